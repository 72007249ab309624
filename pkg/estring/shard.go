package estring

// shard.go implements the per-bin cache of Handles (spec.md §4.2). A Shard
// owns one lookup table (table.go) and a stack of Arenas it allocates
// Entries from; the previous Arena is always retained, never freed, so every
// Handle a Shard has ever produced stays valid for the process's lifetime
// (spec.md I4).
//
// All mutation is serialized by a single lock (internal/lock) selected at
// build time; there is no per-field locking and no lock-free fast path,
// because the critical section is already tiny (a map probe, at most one
// Arena allocation, and a byte copy).
//
// © 2025 estring authors. MIT License.

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/Voskan/estring/internal/arena"
	"github.com/Voskan/estring/internal/digest"
	"github.com/Voskan/estring/internal/lock"
	"github.com/Voskan/estring/internal/unsafehelpers"
)

// initialArenaCapacity is small enough to keep an idle shard cheap (a few
// KiB, per spec.md §4.2) but large enough that most workloads amortize
// dozens of inserts before the first rotation.
const initialArenaCapacity = 4 << 10

// shard owns all mutable state for one bin of the key space.
type shard struct {
	mu     lock.Mutex
	table  probeTable
	arenas []*arena.Arena // stack; last element is the current allocation target
	index  int            // this shard's position in the global registry, for metric/log labels

	logger  *zap.Logger
	metrics metricsSink
}

func newShard(index int) *shard {
	s := &shard{
		mu:      lock.New(),
		index:   index,
		logger:  currentLogger(),
		metrics: currentMetrics(),
	}
	s.logger.Debug("estring: shard initialized",
		zap.Int("shard", index),
		zap.Int("initial_arena_capacity", initialArenaCapacity),
	)
	s.arenas = []*arena.Arena{s.newArena(initialArenaCapacity)}
	return s
}

// recoverAndRepanic logs the abort path (spec.md §4.1, §5) best-effort before
// letting the panic continue to unwind and crash the process. The growth
// policy in grow and allocateEntry guarantees this path is unreachable in
// practice; the deferred call still runs on every allocation for the rare
// case the guarantee is violated.
func (s *shard) recoverAndRepanic(op string) {
	if r := recover(); r != nil {
		s.logger.Error("estring: aborting process",
			zap.Int("shard", s.index),
			zap.String("op", op),
			zap.Any("reason", r),
		)
		panic(r)
	}
}

// newArena wraps arena.New so an allocator-exhaustion/acquisition-failure
// panic during shard growth is logged via s.logger before it propagates.
func (s *shard) newArena(capacity int) *arena.Arena {
	defer s.recoverAndRepanic("arena construction")
	return arena.New(capacity)
}

// allocate wraps Arena.Allocate so the (should-never-happen) abort path is
// logged via s.logger before it propagates.
func (s *shard) allocate(a *arena.Arena, nbytes int) unsafe.Pointer {
	defer s.recoverAndRepanic("arena allocate")
	return a.Allocate(nbytes)
}

func (s *shard) currentArena() *arena.Arena {
	return s.arenas[len(s.arenas)-1]
}

// insert is the mutating half of Intern: find-or-allocate under the shard
// lock.
func (s *shard) insert(str string, h digest.Digest) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.table.find(str, h); ok {
		s.metrics.incLookup(s.index, true)
		return existing
	}

	handle := s.allocateEntry(str, h)
	s.table.growIfNeeded()
	s.table.insertNoGrow(handle)

	s.metrics.incLookup(s.index, false)
	s.metrics.incInterned(s.index)
	s.metrics.setEntries(s.index, s.table.count)
	used, cap := s.arenaBytes()
	s.metrics.setArenaBytes(s.index, used, cap)
	return handle
}

// getExisting is the read-only half: InternIfPresent never allocates.
func (s *shard) getExisting(str string, h digest.Digest) (Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.table.find(str, h)
	s.metrics.incLookup(s.index, ok)
	return handle, ok
}

// allocateEntry writes a new header+bytes Entry into the current Arena,
// growing the Arena stack first if the request would not fit (spec.md
// §4.2's growth policy). Must be called with s.mu held.
func (s *shard) allocateEntry(str string, h digest.Digest) Handle {
	needed := int(headerSize) + len(str)

	cur := s.currentArena()
	// Leave room for alignment rounding inside Arena.Allocate so the growth
	// policy's guarantee ("computed next capacity always exceeds the
	// current request plus header and alignment padding", spec.md §7) holds
	// without ever reaching Arena's abort path.
	if cur.Remaining() < needed+int(headerAlignBytes) {
		cur = s.grow(needed)
	}

	ptr := s.allocate(cur, needed)
	hdr := (*header)(ptr)
	hdr.length = uint64(len(str))
	hdr.hash = h.Hash()

	bytesPtr := unsafe.Add(ptr, int(headerSize))
	if len(str) > 0 {
		dst := unsafehelpers.ByteSliceFrom(bytesPtr, uintptr(len(str)))
		copy(dst, str)
	}
	return Handle{ptr: bytesPtr}
}

// grow pushes a fresh, larger Arena onto the stack and returns it. The
// previous Arena is kept forever in s.arenas; every Handle allocated from it
// remains valid (spec.md I4).
func (s *shard) grow(minNeeded int) *arena.Arena {
	prev := s.currentArena()
	next := prev.Capacity() * 2
	if floor := minNeeded + int(headerAlignBytes); next < floor {
		next = floor
	}
	fresh := s.newArena(next)
	s.arenas = append(s.arenas, fresh)

	s.metrics.incRotation(s.index)
	s.logger.Debug("estring: arena rotation",
		zap.Int("shard", s.index),
		zap.Int("new_capacity", next),
		zap.Int("arena_count", len(s.arenas)),
	)
	return fresh
}

// arenaBytes sums used and total capacity across every Arena this shard has
// ever allocated. Cheap enough for metrics/debug snapshots, not the hot
// path.
func (s *shard) arenaBytes() (used, capacity int64) {
	for _, a := range s.arenas {
		used += int64(a.Used())
		capacity += int64(a.Capacity())
	}
	return used, capacity
}

// snapshot captures a consistent view of the shard for debug.go.
func (s *shard) snapshot() shardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	used, capacity := s.arenaBytes()
	return shardSnapshot{
		Shard:              s.index,
		Entries:            s.table.count,
		ArenaCount:         len(s.arenas),
		ArenaUsedBytes:     used,
		ArenaCapacityBytes: capacity,
	}
}

// headerAlignBytes mirrors internal/arena's alignment so shard.go's growth
// math doesn't need to import arena internals beyond the public API.
const headerAlignBytes = unsafe.Alignof(uint64(0))
