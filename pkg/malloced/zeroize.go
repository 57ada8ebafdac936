package malloced

import (
	"runtime"
	"unsafe"

	"github.com/coinbase/malloced-go/internal/cgo"
)

// Zeroize overwrites the owned value with zero bytes in place. The write goes
// through C memset so it cannot be elided as a dead store.
func (b *Box[T]) Zeroize() {
	if b.ptr == nil {
		return
	}
	cgo.Memset(unsafe.Pointer(b.ptr), 0, unsafe.Sizeof(*b.ptr))
	runtime.KeepAlive(b.ptr)
}

// SecureFree zeroizes the owned value and then frees it. Use it for boxes
// holding key material or other secrets.
func (b *Box[T]) SecureFree() {
	b.Zeroize()
	b.Free()
}

// ZeroizeBytes overwrites buf with zeros and prevents compiler dead store
// elimination using runtime.KeepAlive, following golang/go#33325. Use it on
// Go-heap copies of data read out of a box.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
