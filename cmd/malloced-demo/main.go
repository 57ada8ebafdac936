package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"unsafe"

	"github.com/go-playground/validator/v10"

	"github.com/coinbase/malloced-go/internal/cgo"
	"github.com/coinbase/malloced-go/pkg/malloced"
	"github.com/coinbase/malloced-go/pkg/malloced/logging"
)

type demoConfig struct {
	Pattern uint `validate:"lte=255"`
	Secure  bool
	Verbose bool
}

type block = [32]byte

func main() {
	var cfg demoConfig
	flag.UintVar(&cfg.Pattern, "pattern", 0xAB, "byte written to every position of the block")
	flag.BoolVar(&cfg.Secure, "secure", false, "zeroize the block before freeing it")
	flag.BoolVar(&cfg.Verbose, "v", false, "log at debug level")
	flag.Parse()

	if err := validator.New().Struct(cfg); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	ctx := context.Background()

	logger.Info(ctx, "malloced-demo", "version", malloced.LibraryVersion())
	if err := malloced.Available(); err != nil {
		if errors.Is(err, malloced.ErrCGONotEnabled) {
			fmt.Printf("foreign allocator unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure: %v", err)
	}

	if err := run(ctx, logger, cfg); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}

func run(ctx context.Context, logger logging.Logger, cfg demoConfig) error {
	var zero block
	raw := cgo.Malloc(unsafe.Sizeof(zero))
	box, err := malloced.FromPointer[block](raw)
	if err != nil {
		return fmt.Errorf("wrap %d-byte block: %w", unsafe.Sizeof(zero), err)
	}
	logger.Debug(ctx, "wrapped", logging.Addr("addr", uintptr(box.AsPtr())), "size", len(zero))

	buf := box.Bytes()
	for i := range buf {
		buf[i] = byte(cfg.Pattern)
	}
	written := bytes.Count(buf, []byte{byte(cfg.Pattern)})
	fmt.Printf("wrote pattern to %d of %d bytes\n", written, len(buf))

	addr := uintptr(box.AsPtr())
	if cfg.Secure {
		box.SecureFree()
	} else {
		box.Free()
	}
	logger.Debug(ctx, "released", logging.Addr("addr", addr), "secure", cfg.Secure)
	return nil
}
