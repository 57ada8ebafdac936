package malloced

import (
	"errors"

	"github.com/coinbase/malloced-go/internal/cgo"
)

var (
	// ErrNullPointer is returned when a nil address is offered for wrapping.
	ErrNullPointer = errors.New("malloced: null pointer")

	// ErrReleased is returned by Close when the box no longer owns memory,
	// either because it was freed or because ownership was relinquished.
	ErrReleased = errors.New("malloced: box already released")
)

// ErrCGONotEnabled signals that the binary was built without cgo.
var ErrCGONotEnabled = cgo.ErrCGONotEnabled
