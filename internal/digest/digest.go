// Package digest computes the 64-bit, seeded, non-cryptographic hash that
// identifies every interned string (spec.md §3, §4.4).
//
// The algorithm is xxhash64 (github.com/cespare/xxhash/v2), already present
// in the teacher repo's dependency graph as a transitive pull of Badger's
// storage engine; here it is promoted to a direct, load-bearing dependency.
// It gives us what rapidhash gave the original estr crate this spec was
// distilled from: a fast, well-avalanched, deterministic hash with a fixed
// internal seed, so that equal bytes always produce equal digests across
// calls within the same build.
//
// Go has no const-fn evaluation, so unlike the Rust source's
// `const fn digest`, Sum cannot be evaluated at compile time for string
// literals. Callers wanting to avoid re-hashing a literal on every call
// should store the result of a single Sum call in a package-level var;
// pkg/estring.Empty applies the same compute-once idea to a Handle, caching
// it with sync.OnceValue on first call.
//
// © 2025 estring authors. MIT License.
package digest

import "github.com/cespare/xxhash/v2"

// Digest is the 64-bit hash identifying an interned string.
type Digest uint64

// seed is XORed into every digest so that the value estring produces is
// distinguishable from a bare xxhash64 sum, while remaining a pure function
// of the input bytes and this fixed constant — "seeded" per spec.md §4.4,
// not randomized per-process the way hash/maphash is.
const seed uint64 = 0x9E3779B97F4A7C15 // golden-ratio constant, same role as estr's DEFAULT_RAPID_SECRETS

// Sum returns the Digest of s. It is pure and deterministic: the same bytes
// always produce the same Digest within a single build of this package.
func Sum(s string) Digest {
	return Digest(xxhash.Sum64String(s) ^ seed)
}

// SumBytes is the []byte analogue of Sum, for callers that already hold the
// UTF-8 payload as a slice and want to avoid a string conversion.
func SumBytes(b []byte) Digest {
	return Digest(xxhash.Sum64(b) ^ seed)
}

// Hash returns d as a plain uint64, the Go analogue of the estr crate's
// Digest::hash() (original_source/src/lib.rs) — an explicit accessor for
// callers that want the raw word without reaching for a type conversion.
func (d Digest) Hash() uint64 {
	return uint64(d)
}
