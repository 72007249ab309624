// Package estring implements a process-wide, concurrent, immutable string
// interner: Intern returns a fixed-size Handle that compares and hashes in
// O(1), dereferences back to the original bytes at near-zero cost, and is
// guaranteed equal to every other Handle produced from equal input bytes for
// the remainder of the process's lifetime.
//
// The interned pool never shrinks. Once a string is interned, the bytes
// backing it are effectively static: no eviction, no refcounting, no
// removal, no resizing of live entries. Handles from distinct processes or
// distinct runs of the same program are not expected to compare equal.
//
// Three pieces do the work, leaf-first: internal/arena is a downward bump
// allocator; Shard (unexported) is a per-bin cache of Handles plus a stack
// of Arenas it allocates from; the package-level Intern/InternIfPresent
// functions route a string to one of NBins Shards by the top bits of its
// Digest and return the resulting Handle.
//
// © 2025 estring authors. MIT License.
package estring
