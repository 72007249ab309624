package estring

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Voskan/estring/internal/arena"
	"github.com/Voskan/estring/internal/digest"
)

func TestShardInsertDeduplicates(t *testing.T) {
	s := newShard(0)
	d := digest.Sum("dedupe-me")

	a := s.insert("dedupe-me", d)
	b := s.insert("dedupe-me", d)
	if a != b {
		t.Fatal("two inserts of the same string returned different Handles")
	}
}

func TestShardGetExistingMissesBeforeInsert(t *testing.T) {
	s := newShard(0)
	d := digest.Sum("not-yet-inserted")

	if _, ok := s.getExisting("not-yet-inserted", d); ok {
		t.Fatal("getExisting reported a hit before any insert")
	}

	s.insert("not-yet-inserted", d)

	h, ok := s.getExisting("not-yet-inserted", d)
	if !ok {
		t.Fatal("getExisting missed after insert")
	}
	if h.String() != "not-yet-inserted" {
		t.Fatalf("getExisting returned wrong content: %q", h.String())
	}
}

func TestShardGrowsArenaUnderPressure(t *testing.T) {
	s := newShard(0)
	startArenas := len(s.arenas)

	for i := 0; i < 5000; i++ {
		str := fmt.Sprintf("pressure-%d-%s", i, "padding-to-consume-arena-space-quickly")
		s.insert(str, digest.Sum(str))
	}

	if len(s.arenas) <= startArenas {
		t.Fatalf("expected arena growth, still have %d arena(s)", len(s.arenas))
	}
}

func TestShardSnapshotReflectsInserts(t *testing.T) {
	s := newShard(0)
	for i := 0; i < 10; i++ {
		str := fmt.Sprintf("snap-%d", i)
		s.insert(str, digest.Sum(str))
	}

	snap := s.snapshot()
	if snap.Entries != 10 {
		t.Fatalf("snapshot.Entries = %d, want 10", snap.Entries)
	}
	if snap.ArenaCapacityBytes <= 0 {
		t.Fatal("snapshot.ArenaCapacityBytes should be positive")
	}
}

func TestNewShardLogsInitialization(t *testing.T) {
	prevLogger, prevMetrics := currentLogger(), currentMetrics()
	defer func() {
		configMu.Lock()
		curLogger, curMetrics = prevLogger, prevMetrics
		configMu.Unlock()
	}()

	core, logs := observer.New(zap.DebugLevel)
	if err := Configure(WithLogger(zap.New(core))); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	newShard(0)

	entries := logs.FilterMessage("estring: shard initialized").All()
	if len(entries) != 1 {
		t.Fatalf("expected exactly one initialization log line, got %d", len(entries))
	}
}

func TestShardAllocateAbortIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := &shard{
		logger:  zap.New(core),
		metrics: noopMetrics{},
		arenas:  []*arena.Arena{arena.New(8)},
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected allocate to panic when the request cannot fit")
		}
		entries := logs.FilterMessage("estring: aborting process").All()
		if len(entries) != 1 {
			t.Fatalf("expected exactly one abort log line, got %d", len(entries))
		}
		if entries[0].Level != zapcore.ErrorLevel {
			t.Fatalf("abort log level = %v, want Error", entries[0].Level)
		}
	}()

	// Request far larger than the 8-byte arena; bypasses the shard's own
	// growth policy to exercise the (should-never-happen) abort path.
	s.allocate(s.currentArena(), 4096)
}

func TestShardOldArenasStayValidAfterGrowth(t *testing.T) {
	s := newShard(0)
	first := s.insert("kept-forever", digest.Sum("kept-forever"))

	for i := 0; i < 5000; i++ {
		str := fmt.Sprintf("filler-%d-padding-padding-padding", i)
		s.insert(str, digest.Sum(str))
	}

	if first.String() != "kept-forever" {
		t.Fatalf("handle from before growth corrupted: %q", first.String())
	}
}
