package shline

import (
	"errors"
	"io"
	"log"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotATerminal is returned from ReadLine when either standard input or
// standard output is not a terminal: the editor refuses to operate rather
// than silently falling back to a line-buffered read.
var ErrNotATerminal = errors.New("shline: input/output is not a terminal")

// baselineLineCapacity is the initial line-buffer capacity.
const baselineLineCapacity = 128

// rawModeSwitcher is satisfied by *termState; tests substitute a no-op so
// they can drive the main loop over a pipe without a real tty.
type rawModeSwitcher interface {
	enterRaw() error
	restore() error
}

// resizeSource is satisfied by *resizeWatcher (both the unix and non-unix
// variants); tests substitute a no-op that never signals a resize.
type resizeSource interface {
	takeAndClear() bool
	stop()
}

type noopRawMode struct{}

func (noopRawMode) enterRaw() error { return nil }
func (noopRawMode) restore() error  { return nil }

type noopResize struct{}

func (noopResize) takeAndClear() bool { return false }
func (noopResize) stop()              {}

// Editor owns one terminal session. Rather than an implicit init()
// constructing package-level state, callers construct one Editor and call
// Close when done. The history ring is allocated by New; the rest of
// bring-up (terminal checks, line-buffer pre-allocation, the resize
// watcher) is deferred to the first ReadLine call via bringupOnce, so the
// cost is paid once, lazily, and explicitly.
type Editor struct {
	in, out   *os.File
	inFd      int
	outFd     int
	termIO    *terminalIO
	state     rawModeSwitcher
	watcher   resizeSource
	screen    *screenState
	buf       *lineBuffer
	hist      *historyRing
	completer CompletionFunc
	completion completionState
	prompt    []byte

	bringupOnce sync.Once
	bringupErr  error
	closed      bool

	redrawPending bool
	finished      bool
	eofResult     bool
}

// New creates an Editor reading from in and writing/echoing to out.
// Typical use passes os.Stdin and os.Stdout.
func New(in, out *os.File) *Editor {
	return &Editor{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
		hist:  newHistoryRing(defaultHistoryCapacity),
	}
}

// WithHistoryCapacity overrides the default history ring size (4 entries).
// It is a no-op once the ring holds any entry.
func (e *Editor) WithHistoryCapacity(n int) *Editor {
	if e.hist.length == 0 {
		e.hist = newHistoryRing(n)
	}
	return e
}

// SetPrompt installs the prompt drawn before the editable input. Its cell
// width is taken as its byte length.
func (e *Editor) SetPrompt(p string) {
	if p == "" {
		e.prompt = nil
		return
	}
	e.prompt = []byte(p)
}

// ClearPrompt removes the prompt entirely.
func (e *Editor) ClearPrompt() {
	e.prompt = nil
}

// SetCompleter installs the optional tab-completion hook.
func (e *Editor) SetCompleter(fn CompletionFunc) {
	e.completer = fn
}

func (e *Editor) bringUp() {
	if !term.IsTerminal(e.inFd) || !term.IsTerminal(e.outFd) {
		e.bringupErr = ErrNotATerminal
		return
	}
	e.termIO = &terminalIO{in: e.in, out: e.out}
	e.state = newTermState(e.inFd)
	width, err := windowWidth(e.outFd)
	if err != nil || width < 1 {
		width = 80
	}
	e.screen = newScreenState(e.termIO, width)
	e.buf = newLineBuffer(baselineLineCapacity)
	e.watcher = newResizeWatcher()
}

// Close releases the resize watcher and, if a read is not in progress,
// this is a no-op beyond that: raw mode is only ever installed for the
// duration of a single ReadLine call and is always restored before it
// returns.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if e.watcher != nil {
		e.watcher.stop()
	}
	return nil
}

// ReadLine reads one logical line from the terminal. It returns a borrowed
// view of the internal buffer (valid until the next call), including the
// submitted trailing LF, or nil with io.EOF on end-of-file or Ctrl-D on an
// empty line.
func (e *Editor) ReadLine() ([]byte, error) {
	e.bringupOnce.Do(e.bringUp)
	if e.bringupErr != nil {
		return nil, e.bringupErr
	}

	e.buf.reset()
	e.screen.resetOrigin()
	e.hist.nav = e.hist.capacity
	e.completion.reset()
	e.finished = false
	e.eofResult = false
	e.redrawPending = true

	if err := e.state.enterRaw(); err != nil {
		log.Fatalf("shline: enter raw mode: %v", err)
	}

	for !e.finished {
		if e.watcher.takeAndClear() {
			if w, err := windowWidth(e.outFd); err == nil {
				e.screen.reconcileResize(w)
			}
			e.redrawPending = true
		}

		if e.redrawPending {
			if err := e.screen.redraw(e.prompt, e.buf.bytes(), e.buf.cursor); err != nil {
				e.fatalWrite(err)
			}
			e.redrawPending = false
		}

		ch, ok, err := e.termIO.readByte()
		if err != nil {
			e.state.restore()
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			log.Fatalf("shline: read: %v", err)
		}
		if !ok {
			continue // interrupted read, retry after reconciliation
		}

		if ch == ctrlESC {
			act := decodeEscape(func() (byte, bool) {
				b, ok, err := e.termIO.readByte()
				if err != nil {
					if errors.Is(err, io.EOF) {
						return 0, false
					}
					e.state.restore()
					log.Fatalf("shline: read: %v", err)
				}
				return b, ok
			})
			e.apply(act, 0)
		} else {
			e.apply(directAction(ch), ch)
		}
	}

	if e.screen.col != 1 {
		e.termIO.writeString("\r\n")
	}
	e.state.restore()

	if e.eofResult {
		return nil, io.EOF
	}
	return e.buf.bytes(), nil
}

// fatalWrite restores terminal attributes and aborts the process: a
// terminal that cannot receive output is treated as environmental-fatal.
func (e *Editor) fatalWrite(err error) {
	e.state.restore()
	log.Fatalf("shline: write: %v", err)
}

// abandon ends the current read early because a buffer or history
// allocation could not grow: whatever was accumulated is returned as
// though it had been submitted, without a trailing LF.
func (e *Editor) abandon() {
	e.finished = true
}

// directAction maps a plain (non-escape) byte to its editing action.
func directAction(ch byte) actionID {
	switch ch {
	case ctrlSOH:
		return actMoveHome
	case ctrlSTX:
		return actMoveLeft
	case ctrlEOT:
		return actDeleteOrEOF
	case ctrlENQ:
		return actMoveEnd
	case ctrlACK:
		return actMoveRight
	case ctrlBEL:
		return actBell
	case ctrlBS, ctrlDEL:
		return actBackspace
	case ctrlLF, ctrlCR:
		return actSubmit
	case ctrlVT:
		return actKillToEnd
	case ctrlFF:
		return actClearScreen
	case ctrlNAK:
		return actKillToStart
	case ctrlTAB:
		return actComplete
	default:
		if ch >= 0x20 {
			return actInsert
		}
		return actNone
	}
}

// History* is the caller-facing surface over the history ring.

func (e *Editor) HistoryClear() {
	e.hist.clear()
}

// HistoryAdd stores s, stripping a trailing newline, and reports failure
// (empty input) via a non-nil error rather than a panic.
func (e *Editor) HistoryAdd(s string) error {
	if s == "" {
		return errors.New("shline: empty history entry")
	}
	e.hist.add([]byte(s))
	return nil
}

// HistoryPrint writes every entry, oldest first, to w.
func (e *Editor) HistoryPrint(w io.Writer) error {
	return e.hist.print(w)
}

// HistoryGet returns a copy of the i-th entry (1-based, oldest first).
func (e *Editor) HistoryGet(i int) (string, bool) {
	b, ok := e.hist.get(i)
	if !ok {
		return "", false
	}
	return string(b), true
}

// HistoryLoadFromFile replaces the ring with path's contents, keeping the
// most recent entries if the file holds more than the ring's capacity.
func (e *Editor) HistoryLoadFromFile(path string) error {
	return e.hist.loadFromFile(path)
}

// HistorySaveToFile writes the ring to path, one entry per line, truncating
// unless appendFlag is set.
func (e *Editor) HistorySaveToFile(path string, appendFlag bool) error {
	return e.hist.saveToFile(path, appendFlag)
}

// newEditorForTest builds an Editor over in/out without requiring a real
// terminal: state and watcher are no-ops and bring-up is pre-satisfied, so
// ReadLine's main loop can be exercised over an io.Pipe. width stands in
// for the value bringUp would otherwise get from windowWidth.
func newEditorForTest(in io.Reader, out io.Writer, width int) *Editor {
	e := &Editor{
		hist: newHistoryRing(defaultHistoryCapacity),
	}
	e.termIO = &terminalIO{in: in, out: out}
	e.state = noopRawMode{}
	e.watcher = noopResize{}
	e.screen = newScreenState(e.termIO, width)
	e.buf = newLineBuffer(baselineLineCapacity)
	e.bringupOnce.Do(func() {})
	return e
}
