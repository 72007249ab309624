// Package unsafehelpers centralizes the handful of unsafe.Pointer tricks
// shared by internal/arena and pkg/estring, so the rest of the module stays
// ordinary Go. Every helper documents its preconditions; callers are
// trusted to hold them, the same contract internal/arena and pkg/estring
// already keep with each other under a Shard's lock.
//
// © 2025 estring authors. MIT License.
package unsafehelpers

import "unsafe"

// AlignUp rounds x up to the nearest multiple of align, which must be a
// power of two. Used by internal/arena to round a new arena's capacity up so
// the end of its slab is never an unaligned boundary.
func AlignUp(x, align uintptr) uintptr {
	return (x + align - 1) &^ (align - 1)
}

// IsPowerOfTwo reports whether x has exactly one bit set. internal/arena and
// pkg/estring's probeTable both rely on power-of-two sizes for their
// mask-based arithmetic; internal/arena's tests use it to check headerAlign.
func IsPowerOfTwo(x uintptr) bool {
	return x != 0 && (x&(x-1)) == 0
}

// ByteSliceFrom returns a []byte view of length bytes starting at ptr,
// without copying. The caller must ensure the memory at ptr is at least
// length bytes and outlives the returned slice — true for any pointer
// returned by an Arena, which never frees or moves its backing storage.
func ByteSliceFrom(ptr unsafe.Pointer, length uintptr) []byte {
	return unsafe.Slice((*byte)(ptr), length)
}
