//go:build !cgo

package cgo

import "unsafe"

// Stub implementations for non-CGO builds. The allocator hands out nothing,
// so no address can ever reach Free.

// Enabled reports whether the module was built with cgo.
const Enabled = false

func Malloc(uintptr) unsafe.Pointer { return nil }

func Calloc(uintptr, uintptr) unsafe.Pointer { return nil }

func Free(unsafe.Pointer) {}

// Memset falls back to a Go loop so zeroization keeps working on addresses
// obtained elsewhere.
func Memset(p unsafe.Pointer, c byte, n uintptr) {
	if p == nil || n == 0 {
		return
	}
	b := unsafe.Slice((*byte)(p), n)
	for i := range b {
		b[i] = c
	}
}

func NewUint64(uint64) unsafe.Pointer { return nil }

func LoadUint64(p unsafe.Pointer) uint64 {
	return *(*uint64)(p)
}

func AllocInto(unsafe.Pointer, uintptr, byte) error {
	return ErrCGONotEnabled
}
