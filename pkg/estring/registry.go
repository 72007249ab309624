package estring

// registry.go implements the global, compile-time-fixed array of Shards and
// the two public entry points, Intern and InternIfPresent (spec.md §4.3).
//
// © 2025 estring authors. MIT License.

import (
	"sync"

	"github.com/Voskan/estring/internal/digest"
)

// binBits controls NBins = 1 << binBits. 64 bins is a reasonable default for
// multi-core hosts (spec.md §3 suggests "32 or 64"); raise binBits if
// profiling shows shard-lock contention under very high concurrency.
const binBits = 6

// NBins is the fixed number of shards in the global registry. It is a power
// of two, as required by whichbin's masking.
const NBins = 1 << binBits

var (
	shards    [NBins]*shard
	shardOnce [NBins]sync.Once
)

// getShard returns the Shard for bin i, constructing it on first use. Each
// Shard is initialized at most once, lazily, and lives for the remainder of
// the process (spec.md §4.3).
func getShard(i int) *shard {
	shardOnce[i].Do(func() {
		shards[i] = newShard(i)
	})
	return shards[i]
}

// whichbin selects a shard index from the top bits of a Digest, leaving the
// low bits — which a lookup table's own secondary hashing tends to favor —
// statistically independent of shard placement (spec.md §3).
func whichbin(h digest.Digest) int {
	const totalBits = 64
	return int((h.Hash() >> (totalBits - binBits)) & (NBins - 1))
}

// Intern returns the Handle for s, allocating and storing a new Entry the
// first time s (by bytes) is seen, and returning the existing Handle on
// every subsequent call with equal bytes. The call blocks only on its
// target Shard's lock.
func Intern(s string) Handle {
	d := digest.Sum(s)
	return getShard(whichbin(d)).insert(s, d)
}

// InternIfPresent looks up s without interning it. It never allocates an
// Entry and never blocks longer than acquiring its target Shard's lock; the
// first call that touches a bin still constructs that bin's Shard.
func InternIfPresent(s string) (Handle, bool) {
	d := digest.Sum(s)
	return getShard(whichbin(d)).getExisting(s, d)
}

// Digest returns the 64-bit hash of s using the same algorithm and seed
// Intern uses internally, without touching any Shard. It is pure and safe
// to call from any goroutine at any time (spec.md §4.4, §6).
func Digest(s string) digest.Digest {
	return digest.Sum(s)
}

var emptyHandle = sync.OnceValue(func() Handle {
	return Intern("")
})

// Empty returns the Handle for "". It is computed once and reused; because
// interning is idempotent, every call returns the same Handle that a direct
// Intern("") would (original_source/src/lib.rs's `impl Default for Estr`).
func Empty() Handle {
	return emptyHandle()
}
