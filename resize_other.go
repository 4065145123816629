//go:build !unix

package shline

import "fmt"

// ioctlWindowWidth has no portable equivalent off unix; term.GetSize is the
// only path there, so a failure is reported rather than silently guessed.
func ioctlWindowWidth(fd int) (int, error) {
	return 0, fmt.Errorf("shline: window size unavailable")
}

// resizeWatcher on non-unix platforms has no SIGWINCH to subscribe to, so it
// never signals a resize; takeAndClear always reports false. On these
// platforms the width read at bring-up is used for the life of the Editor.
type resizeWatcher struct{}

func newResizeWatcher() *resizeWatcher { return &resizeWatcher{} }

func (w *resizeWatcher) takeAndClear() bool { return false }

func (w *resizeWatcher) stop() {}
