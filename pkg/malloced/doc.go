// Package malloced provides Box, a single-owner handle over a heap block
// allocated by the C allocator.
//
// Memory returned from C through cgo is invisible to the Go garbage
// collector and has to be passed to free exactly once. A Box records that
// obligation in the type system:
//
//	p := (*C.struct_config)(C.load_config())
//	cfg, err := malloced.FromRaw(p)
//	if err != nil {
//	    return err
//	}
//	defer cfg.Free()
//
//	cfg.Get().retries = 3
//
// # Ownership
//
// A Box owns its address until Free releases it or IntoRaw hands it back to
// the caller. Both paths disarm the box; Free on a disarmed box does nothing.
// Boxes must not be copied. They carry a noCopy marker so that go vet's
// copylocks check reports accidental copies; move a box by passing a pointer
// to it or by IntoRaw followed by FromRaw.
//
// # Layout
//
// A Box[T] has exactly the size, alignment and bit pattern of a *T. C code
// can therefore write an owned address directly into a Box, and a Box can be
// reinterpreted as the raw pointer it holds.
//
// # Preconditions
//
// The only runtime check is the nil check in FromRaw. Wrapping an address not
// obtained from malloc, wrapping an address owned by another box, or using a
// box after IntoRaw are caller errors with undefined behavior. T must not
// contain Go pointers, since the pointee lives in C memory.
package malloced
