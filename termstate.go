package shline

import (
	"golang.org/x/term"
)

// termState snapshots and restores terminal attributes: raw-mode entry and
// exit go through golang.org/x/term instead of calling tcgetattr/tcsetattr
// directly.
type termState struct {
	fd    int
	saved *term.State
}

func newTermState(fd int) *termState {
	return &termState{fd: fd}
}

// enterRaw snapshots the current attributes and installs raw mode:
// canonical mode and local echo cleared, VMIN=1/VTIME=0.
// golang.org/x/term.MakeRaw applies this combination and also turns off
// signal keys, output post-processing and input CR/LF translation.
func (s *termState) enterRaw() error {
	saved, err := term.MakeRaw(s.fd)
	if err != nil {
		return err
	}
	s.saved = saved
	return nil
}

// restore reverts to the snapshot taken by enterRaw. It is safe to call
// more than once and safe to call when enterRaw was never successfully
// called.
func (s *termState) restore() error {
	if s.saved == nil {
		return nil
	}
	err := term.Restore(s.fd, s.saved)
	s.saved = nil
	return err
}

// windowWidth queries the current terminal width in cells, falling back to
// the raw ioctl when the term package's query fails for this descriptor
// (resize_unix.go).
func windowWidth(fd int) (int, error) {
	w, _, err := term.GetSize(fd)
	if err == nil {
		return w, nil
	}
	return ioctlWindowWidth(fd)
}
