package malloced

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"io"
)

// Format implements fmt.Formatter by formatting the owned value as if it were
// passed directly. A box that owns nothing formats as <nil>. The fmt package
// handles %p itself, so %p prints the location of the box; print AsPtr for
// the owned address.
func (b *Box[T]) Format(f fmt.State, verb rune) {
	if b.ptr == nil {
		_, _ = io.WriteString(f, "<nil>")
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), *b.ptr)
}

// String returns the default formatting of the owned value.
func (b *Box[T]) String() string {
	if b.ptr == nil {
		return "<nil>"
	}
	return fmt.Sprint(*b.ptr)
}

// Equal reports whether the values owned by a and b are equal. Two boxes
// over different addresses holding equal values are equal.
func Equal[T comparable](a, b *Box[T]) bool {
	return *a.ptr == *b.ptr
}

// Compare orders a and b by their owned values, as cmp.Compare does.
func Compare[T cmp.Ordered](a, b *Box[T]) int {
	return cmp.Compare(*a.ptr, *b.ptr)
}

// Hash hashes the owned value, so that boxes holding equal values hash
// equally under the same seed.
func Hash[T comparable](seed maphash.Seed, b *Box[T]) uint64 {
	return maphash.Comparable(seed, *b.ptr)
}
