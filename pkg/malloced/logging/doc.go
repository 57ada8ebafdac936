// Package logging provides a minimal logging facade for malloced tooling.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The Box type itself never logs; the
// facade is used by the malloctest allocation tracker and by the demo binary.
//
// # Default Implementation
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Addresses and Redaction
//
// Addresses are logged with Addr. The bytes behind an address may hold
// secrets and are logged only as Redacted:
//
//	logger.Debug(ctx, "released", logging.Addr("addr", uintptr(p)), logging.Redacted("contents"))
//	// Logs: addr=0xc000012345 contents="[redacted]"
package logging
