package cgo

import (
	"sync"
	"unsafe"
)

// Observer receives allocation events from this package. Implementations
// must be safe for concurrent use.
type Observer interface {
	// Allocated is called after the C allocator returned p for size bytes.
	Allocated(p unsafe.Pointer, size uintptr)
	// Releasing is called before p is passed to C free. Returning false
	// skips the call to free.
	Releasing(p unsafe.Pointer) bool
}

var (
	obsMu sync.RWMutex
	obs   Observer
)

// Instrument installs o as the active observer and returns a function that
// restores the previous one. Observers do not stack: only the most recently
// installed one is notified.
func Instrument(o Observer) (restore func()) {
	obsMu.Lock()
	prev := obs
	obs = o
	obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			obsMu.Lock()
			obs = prev
			obsMu.Unlock()
		})
	}
}

func current() Observer {
	obsMu.RLock()
	o := obs
	obsMu.RUnlock()
	return o
}

func notifyAllocated(p unsafe.Pointer, size uintptr) {
	if o := current(); o != nil {
		o.Allocated(p, size)
	}
}

func notifyReleasing(p unsafe.Pointer) bool {
	if o := current(); o != nil {
		return o.Releasing(p)
	}
	return true
}
