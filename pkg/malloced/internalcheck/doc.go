// Package internalcheck holds static policy tests for the malloced module.
//
// The tests load the module with golang.org/x/tools/go/packages and inspect
// its syntax to keep the foreign-memory rules enforceable:
//
//   - only internal/cgo imports "C";
//   - the C deallocator is reached only from the box and the test harness;
//   - the box never allocates;
//   - box contents are never passed straight to fmt, log or slog.
//
// It is not intended for external use and has no exported API.
package internalcheck
