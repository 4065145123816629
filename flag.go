package shline

import "sync/atomic"

// atomicFlag is a volatile boolean safe to set from a signal-fed goroutine
// and to read-and-clear from the main loop.
type atomicFlag struct {
	v atomic.Bool
}

func (f *atomicFlag) set() { f.v.Store(true) }

func (f *atomicFlag) takeAndClear() bool {
	return f.v.Swap(false)
}
