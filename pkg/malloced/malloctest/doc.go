// Package malloctest instruments the C allocator behind malloced boxes so
// tests can count allocations and releases per address.
//
//	func TestRelease(t *testing.T) {
//	    tr := malloctest.New(t, malloctest.Config{CaptureContents: true})
//	    p := malloctest.Alloc(t, [32]byte{})
//	    box, err := malloced.FromRaw(p)
//	    require.NoError(t, err)
//	    box.Free()
//	    tr.RequireFreedOnce(unsafe.Pointer(p))
//	}
//
// A Tracker suppresses the call to C free for double and foreign frees, so a
// test that provokes one fails with a report instead of crashing.
package malloctest
