package malloced

import (
	"unsafe"

	"github.com/coinbase/malloced-go/internal/cgo"
)

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Box is an owning pointer to a value of type T stored in memory obtained
// from C malloc. The zero Box owns nothing.
//
// T may be an array type, in which case the box covers the whole array. The
// box does not track lengths of its own.
type Box[T any] struct {
	_   noCopy
	ptr *T
}

// FromRaw takes ownership of p, which must have been allocated by C malloc
// (or calloc) and must not be owned elsewhere. It returns ErrNullPointer if
// p is nil.
func FromRaw[T any](p *T) (Box[T], error) {
	if p == nil {
		return Box[T]{}, ErrNullPointer
	}
	return Box[T]{ptr: p}, nil
}

// FromRawUnchecked is FromRaw without the nil check. Passing nil is a caller
// error; the resulting box panics on first access.
func FromRawUnchecked[T any](p *T) Box[T] {
	return Box[T]{ptr: p}
}

// FromPointer is FromRaw for the untyped void* results of cgo calls.
func FromPointer[T any](p unsafe.Pointer) (Box[T], error) {
	return FromRaw((*T)(p))
}

// Get returns a pointer to the owned value. The pointer is valid until the
// box is freed or relinquished.
func (b *Box[T]) Get() *T {
	return b.ptr
}

// Value returns a copy of the owned value.
func (b *Box[T]) Value() T {
	return *b.ptr
}

// Set overwrites the owned value with v.
func (b *Box[T]) Set(v T) {
	*b.ptr = v
}

// Bytes returns the memory of the owned value as a byte slice aliasing the
// C allocation.
func (b *Box[T]) Bytes() []byte {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(b.ptr)), unsafe.Sizeof(*b.ptr))
}

// AsPtr returns the owned address without giving up ownership, for passing
// to C functions that borrow it.
func (b *Box[T]) AsPtr() unsafe.Pointer {
	return unsafe.Pointer(b.ptr)
}

// Owned reports whether the box still owns an address.
func (b *Box[T]) Owned() bool {
	return b.ptr != nil
}

// IntoRaw gives up ownership and returns the address. The memory is not
// freed; the caller must free it or wrap it again.
func (b *Box[T]) IntoRaw() *T {
	p := b.ptr
	b.ptr = nil
	return p
}

// Free releases the owned memory with C free and disarms the box. Calling
// Free on a box that owns nothing is a no-op.
func (b *Box[T]) Free() {
	p := b.ptr
	if p == nil {
		return
	}
	b.ptr = nil
	cgo.Free(unsafe.Pointer(p))
}

// Close is Free in io.Closer form. It returns ErrReleased when the box owns
// nothing.
func (b *Box[T]) Close() error {
	if b.ptr == nil {
		return ErrReleased
	}
	b.Free()
	return nil
}
