package cgo

import "errors"

var (
	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot reach the C allocator.
	ErrCGONotEnabled = errors.New("malloced/internal/cgo: cgo not enabled")

	// ErrParam reports an invalid argument rejected by a C helper.
	ErrParam = errors.New("malloced/internal/cgo: invalid parameter")

	// ErrOutOfMemory reports that the C allocator returned NULL.
	ErrOutOfMemory = errors.New("malloced/internal/cgo: out of memory")
)
