package malloced

import "unsafe"

// A Box must be indistinguishable from the raw address it holds. Each line
// fails to compile if the size or alignment of a Box drifts from a pointer's.
var (
	_ [unsafe.Sizeof(Box[byte]{}) - unsafe.Sizeof(unsafe.Pointer(nil))]struct{}
	_ [unsafe.Sizeof(unsafe.Pointer(nil)) - unsafe.Sizeof(Box[byte]{})]struct{}
	_ [unsafe.Alignof(Box[uint64]{}) - unsafe.Alignof(unsafe.Pointer(nil))]struct{}
	_ [unsafe.Alignof(unsafe.Pointer(nil)) - unsafe.Alignof(Box[uint64]{})]struct{}
	_ [unsafe.Sizeof(Box[[32]byte]{}) - unsafe.Sizeof(unsafe.Pointer(nil))]struct{}
	_ [unsafe.Sizeof(unsafe.Pointer(nil)) - unsafe.Sizeof(Box[[32]byte]{})]struct{}
)
