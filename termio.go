package shline

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// terminalIO is the thin wrapper around the raw read/write file descriptors.
// Every write is a direct, blocking byte write; a short or failed write is
// fatal and is surfaced to the caller (a short write as errShortWrite, a
// failed write as its own error) so the editor can restore terminal
// attributes before aborting.
type terminalIO struct {
	in  io.Reader
	out io.Writer
}

var errShortWrite = fmt.Errorf("shline: short write to terminal")

func (t *terminalIO) write(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	n, err := t.out.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return errShortWrite
	}
	return nil
}

func (t *terminalIO) writeString(s string) error {
	return t.write([]byte(s))
}

// bell emits the single BEL byte.
func (t *terminalIO) bell() error {
	return t.write([]byte{ctrlBEL})
}

// readByte reads exactly one byte, blocking. It returns ok=false with a nil
// err on a read interrupted by a signal (syscall.EINTR) or on any other
// read that returned zero bytes without an error — both treated as
// retryable by the caller, which reconciles a pending resize and redraws
// before trying again. On end of input err is io.EOF; any other non-nil err
// is a genuine, fatal read error.
func (t *terminalIO) readByte() (b byte, ok bool, err error) {
	var buf [1]byte
	n, err := t.in.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err != nil {
		if errors.Is(err, syscall.EINTR) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return 0, false, nil
}
