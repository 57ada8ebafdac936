package malloctest

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/malloced-go/internal/cgo"
	"github.com/coinbase/malloced-go/pkg/malloced/logging"
)

// EventKind classifies a tracked allocation event.
type EventKind int

const (
	// EventAlloc is an allocation returned by the C allocator.
	EventAlloc EventKind = iota
	// EventFree is a release that was passed on to C free.
	EventFree
	// EventDoubleFree is a release of a block that was already freed. The
	// call to C free is suppressed.
	EventDoubleFree
	// EventForeignFree is a release of an address the tracker never saw
	// allocated. The call to C free is suppressed.
	EventForeignFree
)

func (k EventKind) String() string {
	switch k {
	case EventAlloc:
		return "alloc"
	case EventFree:
		return "free"
	case EventDoubleFree:
		return "double-free"
	case EventForeignFree:
		return "foreign-free"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one entry of the tracker history.
type Event struct {
	Kind EventKind
	Addr uintptr
	Size uintptr
}

func (e Event) String() string {
	return fmt.Sprintf("%s addr=0x%x size=%d", e.Kind, e.Addr, e.Size)
}

type block struct {
	size     uintptr
	live     bool
	frees    int
	contents []byte
}

// Tracker observes every allocation and release made through the module's C
// allocator while it is installed. It counts calls per address, suppresses
// double and foreign frees so the test process survives them, and records
// them as violations.
type Tracker struct {
	t      testing.TB
	cfg    Config
	logger logging.Logger

	mu         sync.Mutex
	blocks     map[uintptr]*block
	allocs     int
	frees      int
	violations []Event
	history    *queue.Queue

	restore func()
}

// New installs a Tracker for the duration of t. At cleanup the previous
// observer is restored and, unless Config.AllowLeaks is set, the test fails
// if any tracked block is still live or any violation was recorded. Tests
// using a Tracker must not run in parallel with other tests that allocate.
func New(t testing.TB, cfg Config) *Tracker {
	t.Helper()
	RequireCGO(t)
	require.NoError(t, cfg.Validate())

	cfg = cfg.withDefaults()
	tr := &Tracker{
		t:       t,
		cfg:     cfg,
		logger:  cfg.Logger.With("test", t.Name()),
		blocks:  make(map[uintptr]*block),
		history: queue.New(),
	}
	tr.restore = cgo.Instrument(tr)
	t.Cleanup(func() {
		tr.restore()
		tr.RequireNoViolations()
		if !cfg.AllowLeaks {
			tr.RequireNoLeaks()
		}
	})
	return tr
}

// RequireCGO skips t when the binary was built without cgo.
func RequireCGO(t testing.TB) {
	t.Helper()
	if !cgo.Enabled {
		t.Skip("cgo not enabled")
	}
}

// Allocated implements cgo.Observer.
func (tr *Tracker) Allocated(p unsafe.Pointer, size uintptr) {
	addr := uintptr(p)

	tr.mu.Lock()
	tr.blocks[addr] = &block{size: size, live: true}
	tr.allocs++
	tr.record(Event{Kind: EventAlloc, Addr: addr, Size: size})
	tr.mu.Unlock()

	tr.logger.Debug(context.Background(), "allocated", logging.Addr("addr", addr), "size", size)
}

// Releasing implements cgo.Observer.
func (tr *Tracker) Releasing(p unsafe.Pointer) bool {
	addr := uintptr(p)

	tr.mu.Lock()
	b, ok := tr.blocks[addr]
	var ev Event
	switch {
	case !ok:
		ev = Event{Kind: EventForeignFree, Addr: addr}
		tr.violations = append(tr.violations, ev)
	case !b.live:
		b.frees++
		ev = Event{Kind: EventDoubleFree, Addr: addr, Size: b.size}
		tr.violations = append(tr.violations, ev)
	default:
		b.frees++
		b.live = false
		if tr.cfg.CaptureContents {
			b.contents = bytes.Clone(unsafe.Slice((*byte)(p), b.size))
		}
		tr.frees++
		ev = Event{Kind: EventFree, Addr: addr, Size: b.size}
	}
	tr.record(ev)
	tr.mu.Unlock()

	if ev.Kind != EventFree {
		tr.logger.Error(context.Background(), "release rejected", "kind", ev.Kind.String(), logging.Addr("addr", addr))
		return false
	}
	tr.logger.Debug(context.Background(), "released", logging.Addr("addr", addr), "size", ev.Size, logging.Redacted("contents"))
	return true
}

// record appends ev to the bounded history. Callers hold tr.mu.
func (tr *Tracker) record(ev Event) {
	tr.history.Add(ev)
	for tr.history.Length() > tr.cfg.History {
		tr.history.Remove()
	}
}

// Allocs returns the number of allocations observed.
func (tr *Tracker) Allocs() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.allocs
}

// Frees returns the number of releases passed on to C free.
func (tr *Tracker) Frees() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.frees
}

// Live returns the number of tracked blocks not yet freed.
func (tr *Tracker) Live() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	n := 0
	for _, b := range tr.blocks {
		if b.live {
			n++
		}
	}
	return n
}

// FreeCount returns how many times the most recent block at p was released,
// including suppressed double frees.
func (tr *Tracker) FreeCount(p unsafe.Pointer) int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if b, ok := tr.blocks[uintptr(p)]; ok {
		return b.frees
	}
	return 0
}

// Contents returns the bytes of the block at p as they were right before it
// was freed. It requires Config.CaptureContents.
func (tr *Tracker) Contents(p unsafe.Pointer) ([]byte, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	b, ok := tr.blocks[uintptr(p)]
	if !ok || b.contents == nil {
		return nil, false
	}
	return bytes.Clone(b.contents), true
}

// Violations returns the double and foreign frees recorded so far.
func (tr *Tracker) Violations() []Event {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]Event(nil), tr.violations...)
}

// TakeViolations returns the recorded violations and clears them, for tests
// that provoke a double or foreign free on purpose.
func (tr *Tracker) TakeViolations() []Event {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	out := tr.violations
	tr.violations = nil
	return out
}

// History returns the retained events, oldest first.
func (tr *Tracker) History() []Event {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	out := make([]Event, tr.history.Length())
	for i := range out {
		out[i] = tr.history.Get(i).(Event)
	}
	return out
}

func (tr *Tracker) dump() string {
	var sb strings.Builder
	sb.WriteString("recent allocation events:")
	for _, ev := range tr.History() {
		sb.WriteString("\n\t")
		sb.WriteString(ev.String())
	}
	return sb.String()
}

// RequireFreedOnce fails the test unless the block at p was released exactly
// once.
func (tr *Tracker) RequireFreedOnce(p unsafe.Pointer) {
	tr.t.Helper()
	require.Equal(tr.t, 1, tr.FreeCount(p), "free count for %p\n%s", p, tr.dump())
}

// RequireNotFreed fails the test if the block at p was released.
func (tr *Tracker) RequireNotFreed(p unsafe.Pointer) {
	tr.t.Helper()
	require.Zero(tr.t, tr.FreeCount(p), "free count for %p\n%s", p, tr.dump())
}

// RequireNoLeaks fails the test if any tracked block is still live.
func (tr *Tracker) RequireNoLeaks() {
	tr.t.Helper()
	require.Zero(tr.t, tr.Live(), "live blocks\n%s", tr.dump())
}

// RequireNoViolations fails the test if a double or foreign free occurred.
func (tr *Tracker) RequireNoViolations() {
	tr.t.Helper()
	require.Empty(tr.t, tr.Violations(), "%s", tr.dump())
}
