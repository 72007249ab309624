package estring

// handle.go implements the Handle type and the Entry layout it points into
// (spec.md §3). An Entry is a header immediately followed by its UTF-8
// payload, allocated as one contiguous block inside a Shard's current Arena:
//
//	+--------+--------+------------------+
//	| length | hash   | bytes[length]    |
//	+--------+--------+------------------+
//	                   ^ Handle points here (bytes[0])
//
// A Handle is the address of bytes[0]; the header is recovered by
// subtracting headerSize. This is the estr crate's own convention
// (original_source/src/lib.rs: Estr::as_string_cache_entry subtracts one
// StringCacheEntry's width from the handle pointer) — chosen so the handle
// is already the "string start" callers usually want, rather than requiring
// every read to hop over the header first.
//
// © 2025 estring authors. MIT License.

import (
	"unsafe"

	"github.com/Voskan/estring/internal/digest"
)

// header is the fixed-size record immediately preceding every Entry's bytes.
// Field order and width are part of the binary contract (spec.md §6): both
// fields are machine words, so the struct's natural alignment already
// satisfies headerAlign without padding tricks.
type header struct {
	length uint64
	hash   uint64
}

const headerSize = unsafe.Sizeof(header{})

// Handle is a single non-null pointer to the first byte of an interned
// string's payload. It is trivially copyable, exactly one machine word wide,
// and safe to share across goroutines: every byte it can reach is immutable
// and lives for the remainder of the process (spec.md §3, §5).
//
// The zero Handle is never returned by Intern, nor by InternIfPresent with
// ok == true (a miss returns the zero Handle alongside ok == false); it is
// reserved internally as the "empty slot" sentinel in a Shard's lookup
// table, and IsZero reports whether a Handle is that sentinel.
type Handle struct {
	ptr unsafe.Pointer
}

// IsZero reports whether h is the zero Handle (never produced by Intern).
func (h Handle) IsZero() bool {
	return h.ptr == nil
}

func (h Handle) headerPtr() *header {
	return (*header)(unsafe.Add(h.ptr, -int(headerSize)))
}

// Len returns the byte length of the interned string. O(1), never blocks.
func (h Handle) Len() int {
	return int(h.headerPtr().length)
}

// Digest returns the precomputed 64-bit hash stored in the Entry header.
// O(1), never blocks, never rehashes the bytes.
func (h Handle) Digest() digest.Digest {
	return digest.Digest(h.headerPtr().hash)
}

// Bytes returns the UTF-8 payload as a byte slice backed directly by arena
// memory. The slice must never be mutated by the caller: every Entry's bytes
// are immutable for the lifetime of the process (spec.md I3).
func (h Handle) Bytes() []byte {
	n := h.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(h.ptr), n)
}

// String returns the interned string. It performs no allocation or copy: the
// returned string aliases arena memory that is never written to again,
// which is exactly the safety condition unsafe.String requires.
func (h Handle) String() string {
	return unsafe.String((*byte)(h.ptr), h.Len())
}

// Equal reports whether h and other reference the same interned string.
// Because of the interner's uniqueness invariant (spec.md I1), this is
// identical to comparing h == other with Go's built-in equality operator;
// Equal exists for readability and parity with other Go value types that
// define it (time.Time, netip.Addr, ...).
func (h Handle) Equal(other Handle) bool {
	return h == other
}

// EqualString reports whether h's interned bytes equal s, without needing a
// prior call to Intern(s). This is the Go analogue of the original estr
// crate's `impl PartialEq<str> for Estr`.
func (h Handle) EqualString(s string) bool {
	return h.String() == s
}

// Less orders Handles by Digest, not lexicographically by content. This is
// intentionally fast and total, but it is NOT alphabetical order — callers
// that want lexicographic ordering must sort by h.String() instead
// (spec.md §4.3, §9).
func (h Handle) Less(other Handle) bool {
	return h.Digest() < other.Digest()
}
