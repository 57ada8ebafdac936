package malloced

import "github.com/coinbase/malloced-go/internal/cgo"

var (
	Version = "v0.0.0-in-progress"
)

// LibraryVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func LibraryVersion() string {
	return Version
}

// Available reports whether the C allocator is linked into the binary. It
// returns ErrCGONotEnabled for builds without cgo, in which no foreign
// memory can exist and every box stays empty.
func Available() error {
	if !cgo.Enabled {
		return ErrCGONotEnabled
	}
	return nil
}
