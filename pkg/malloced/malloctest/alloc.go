package malloctest

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/coinbase/malloced-go/internal/cgo"
)

// Alloc copies v into a fresh C malloc block and returns its address. The
// caller owns the block. T must have a non-zero size and must not contain Go
// pointers.
func Alloc[T any](t testing.TB, v T) *T {
	t.Helper()
	RequireCGO(t)
	p := cgo.Malloc(unsafe.Sizeof(v))
	require.NotNil(t, p, "malloc(%d)", unsafe.Sizeof(v))
	*(*T)(p) = v
	return (*T)(p)
}

// AllocBytes returns a fresh C malloc block of n bytes, each set to fill.
func AllocBytes(t testing.TB, n uintptr, fill byte) unsafe.Pointer {
	t.Helper()
	RequireCGO(t)
	p := cgo.Malloc(n)
	require.NotNil(t, p, "malloc(%d)", n)
	cgo.Memset(p, fill, n)
	return p
}

// Free releases a block obtained from Alloc or AllocBytes that is not owned
// by a box.
func Free(p unsafe.Pointer) {
	cgo.Free(p)
}
