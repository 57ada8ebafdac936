package malloced_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/malloced-go/internal/cgo"
	"github.com/coinbase/malloced-go/pkg/malloced"
	"github.com/coinbase/malloced-go/pkg/malloced/malloctest"
)

func TestLayoutMatchesPointer(t *testing.T) {
	ptrSize := unsafe.Sizeof(unsafe.Pointer(nil))
	ptrAlign := unsafe.Alignof(unsafe.Pointer(nil))

	tests := []struct {
		name  string
		size  uintptr
		align uintptr
	}{
		{"byte", unsafe.Sizeof(malloced.Box[byte]{}), unsafe.Alignof(malloced.Box[byte]{})},
		{"uint64", unsafe.Sizeof(malloced.Box[uint64]{}), unsafe.Alignof(malloced.Box[uint64]{})},
		{"array", unsafe.Sizeof(malloced.Box[[32]byte]{}), unsafe.Alignof(malloced.Box[[32]byte]{})},
		{"struct", unsafe.Sizeof(malloced.Box[point]{}), unsafe.Alignof(malloced.Box[point]{})},
		{"empty", unsafe.Sizeof(malloced.Box[struct{}]{}), unsafe.Alignof(malloced.Box[struct{}]{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ptrSize, tt.size)
			assert.Equal(t, ptrAlign, tt.align)
		})
	}
}

func TestBitPatternIsAddress(t *testing.T) {
	malloctest.New(t, malloctest.Config{})

	p := malloctest.Alloc(t, uint64(0x0102030405060708))
	box, err := malloced.FromRaw(p)
	require.NoError(t, err)
	defer box.Free()

	asRaw := *(*unsafe.Pointer)(unsafe.Pointer(&box))
	assert.Equal(t, unsafe.Pointer(p), asRaw)
	assert.Equal(t, unsafe.Pointer(p), box.AsPtr())

	var zero malloced.Box[uint64]
	assert.Nil(t, *(*unsafe.Pointer)(unsafe.Pointer(&zero)))
}

func TestBoxAcrossForeignCalls(t *testing.T) {
	tr := malloctest.New(t, malloctest.Config{})

	// C writes an owned address straight into the box.
	var block malloced.Box[[32]byte]
	require.NoError(t, cgo.AllocInto(unsafe.Pointer(&block), 32, 0xAB))
	require.True(t, block.Owned())
	for _, b := range block.Get() {
		require.Equal(t, byte(0xAB), b)
	}
	addr := block.AsPtr()
	block.Free()
	tr.RequireFreedOnce(addr)

	// C reads through a box reinterpreted as uint64_t*.
	counter, err := malloced.FromPointer[uint64](cgo.NewUint64(41))
	require.NoError(t, err)
	defer counter.Free()

	counter.Set(counter.Value() + 1)
	assert.Equal(t, uint64(42), cgo.LoadUint64(*(*unsafe.Pointer)(unsafe.Pointer(&counter))))
}
