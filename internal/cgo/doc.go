// Package cgo contains all CGO code of the module: the C allocator and
// deallocator pair that malloced boxes are defined against.
//
// # Design Principles
//
// 1. Isolation: ALL CGO code lives in this package. No other package should
//    import "C". Test files cannot use cgo, so tests allocate C memory through
//    the exported helpers here.
//
// 2. Minimal Surface: Malloc, Calloc, Free and Memset, plus a handful of tiny
//    C functions that take or return owned addresses.
//
// 3. Matching Pair: every address handed out by Malloc or Calloc must be
//    released by Free, which calls the C library's free.
//
// 4. Instrumentation: an Observer installed with Instrument sees every
//    allocation and release made through this package. Observers may veto a
//    release, which lets test harnesses survive a double free.
//
// # Memory Layout
//
// Addresses are plain unsafe.Pointer values pointing outside the Go heap. The
// garbage collector never scans or moves them.
//
// # Threading
//
// The C allocator is thread-safe. The observer slot is guarded by a mutex.
package cgo
