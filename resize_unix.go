//go:build unix

package shline

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// ioctlWindowWidth is the direct TIOCGWINSZ path, exercised when
// term.GetSize can't resolve a width for fd.
func ioctlWindowWidth(fd int) (int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	return int(ws.Col), nil
}

// resizeWatcher turns SIGWINCH into a volatile flag: the signal handler
// (here, the goroutine fed by signal.Notify, Go's async-safe equivalent)
// does nothing but set the flag; all reconciliation happens synchronously
// in the editor's main loop.
type resizeWatcher struct {
	ch   chan os.Signal
	done chan struct{}
	flag *atomicFlag
}

func newResizeWatcher() *resizeWatcher {
	w := &resizeWatcher{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
		flag: new(atomicFlag),
	}
	signal.Notify(w.ch, syscall.SIGWINCH)
	go w.run()
	return w
}

func (w *resizeWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case <-w.ch:
			w.flag.set()
		}
	}
}

// takeAndClear reports whether a resize was signalled since the last call,
// clearing the flag atomically.
func (w *resizeWatcher) takeAndClear() bool {
	return w.flag.takeAndClear()
}

func (w *resizeWatcher) stop() {
	signal.Stop(w.ch)
	close(w.done)
}
