//go:build cgo

package cgo

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

static uint64_t* malloced_new_u64(uint64_t v) {
	uint64_t* p = malloc(sizeof(*p));
	if (p != NULL) {
		*p = v;
	}
	return p;
}

static uint64_t malloced_load_u64(const uint64_t* p) {
	return *p;
}

static int malloced_alloc_into(void** out, size_t n, uint8_t pattern) {
	if (out == NULL || n == 0) {
		return 2;
	}
	void* p = malloc(n);
	if (p == NULL) {
		return 3;
	}
	memset(p, pattern, n);
	*out = p;
	return 0;
}
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// Error constants matching the C helper return codes
const (
	Success     = 0
	ParamError  = 2
	MemoryError = 3
)

// Enabled reports whether the module was built with cgo.
const Enabled = true

// Malloc allocates size bytes with C malloc. It returns nil when size is zero
// or the allocator fails.
func Malloc(size uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	p := C.malloc(C.size_t(size))
	if p != nil {
		notifyAllocated(p, size)
	}
	return p
}

// Calloc allocates n*size zeroed bytes with C calloc.
func Calloc(n, size uintptr) unsafe.Pointer {
	if n == 0 || size == 0 {
		return nil
	}
	p := C.calloc(C.size_t(n), C.size_t(size))
	if p != nil {
		notifyAllocated(p, n*size)
	}
	return p
}

// Free releases p with C free. A nil p is ignored, like free(NULL).
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	if !notifyReleasing(p) {
		return
	}
	C.free(p)
}

// Memset fills n bytes at p with c.
func Memset(p unsafe.Pointer, c byte, n uintptr) {
	if p == nil || n == 0 {
		return
	}
	C.memset(p, C.int(c), C.size_t(n))
}

// NewUint64 calls a C function that returns a freshly malloc-ed uint64_t*
// holding v. The caller owns the result.
func NewUint64(v uint64) unsafe.Pointer {
	p := unsafe.Pointer(C.malloced_new_u64(C.uint64_t(v)))
	if p != nil {
		notifyAllocated(p, unsafe.Sizeof(v))
	}
	return p
}

// LoadUint64 passes p to a C function declared as taking const uint64_t*.
func LoadUint64(p unsafe.Pointer) uint64 {
	return uint64(C.malloced_load_u64((*C.uint64_t)(p)))
}

// AllocInto lets C write a newly allocated n-byte block filled with pattern
// into the pointer-sized slot at out. The slot may be any Go value whose
// representation is a single address.
func AllocInto(out unsafe.Pointer, n uintptr, pattern byte) error {
	rc := C.malloced_alloc_into((*unsafe.Pointer)(out), C.size_t(n), C.uint8_t(pattern))
	switch rc {
	case Success:
		notifyAllocated(*(*unsafe.Pointer)(out), n)
		return nil
	case ParamError:
		return fmt.Errorf("alloc into: %w", ErrParam)
	case MemoryError:
		return fmt.Errorf("alloc into %d bytes: %w", n, ErrOutOfMemory)
	default:
		return fmt.Errorf("alloc into: unexpected return code %d", int(rc))
	}
}
