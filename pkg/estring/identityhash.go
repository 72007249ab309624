package estring

// identityhash.go is the Go analogue of original_source/src/collections.rs:
// EstrMap, EstrSet, and IdentityHasher. The Rust crate plugs a custom
// zero-cost Hasher into hashbrown so that using an Estr as a map key never
// rehashes its bytes, only its precomputed hash.
//
// Go's built-in map does not accept a pluggable Hasher, but a Handle is
// already a single pointer-sized word (unsafe.Pointer): runtime.memhash on a
// word-sized key is already the cheapest hash Go can compute, with no bytes
// to rehash either way. So IdentityMap/IdentitySet are thin generic wrappers
// over Go's builtin map[Handle]V — there is no separate hasher to write,
// because map[Handle]V already has the property IdentityHasher exists to
// give Rust's hashbrown.
//
// © 2025 estring authors. MIT License.

// IdentityMap is a map keyed by Handle, relying on a Handle's pointer
// identity for both equality and hashing (spec.md I1: equal strings always
// produce the same Handle, so this is safe to use as a deduplicating cache
// keyed by interned string).
type IdentityMap[V any] struct {
	m map[Handle]V
}

// NewIdentityMap returns an empty IdentityMap ready to use. The zero value
// is also ready to use; NewIdentityMap exists to pre-size the underlying map
// when the caller knows roughly how many entries it will hold.
func NewIdentityMap[V any](sizeHint int) *IdentityMap[V] {
	return &IdentityMap[V]{m: make(map[Handle]V, sizeHint)}
}

// Get returns the value stored for h and whether it was present.
func (im *IdentityMap[V]) Get(h Handle) (V, bool) {
	v, ok := im.m[h]
	return v, ok
}

// Set stores v for h, overwriting any previous value.
func (im *IdentityMap[V]) Set(h Handle, v V) {
	if im.m == nil {
		im.m = make(map[Handle]V)
	}
	im.m[h] = v
}

// Delete removes h, if present.
func (im *IdentityMap[V]) Delete(h Handle) {
	delete(im.m, h)
}

// Len reports the number of entries currently stored.
func (im *IdentityMap[V]) Len() int {
	return len(im.m)
}

// Range calls fn for every entry, in unspecified order, stopping early if fn
// returns false. It follows the same mutation-during-iteration rules as
// ranging over a plain Go map directly.
func (im *IdentityMap[V]) Range(fn func(Handle, V) bool) {
	for h, v := range im.m {
		if !fn(h, v) {
			return
		}
	}
}

// IdentitySet is a set of Handles, the Go analogue of
// original_source/src/collections.rs's EstrSet.
type IdentitySet struct {
	m map[Handle]struct{}
}

// NewIdentitySet returns an empty IdentitySet ready to use.
func NewIdentitySet(sizeHint int) *IdentitySet {
	return &IdentitySet{m: make(map[Handle]struct{}, sizeHint)}
}

// Add inserts h, returning true if it was newly added and false if it was
// already a member.
func (s *IdentitySet) Add(h Handle) bool {
	if s.m == nil {
		s.m = make(map[Handle]struct{})
	}
	if _, ok := s.m[h]; ok {
		return false
	}
	s.m[h] = struct{}{}
	return true
}

// Contains reports whether h is a member.
func (s *IdentitySet) Contains(h Handle) bool {
	_, ok := s.m[h]
	return ok
}

// Remove deletes h, if present.
func (s *IdentitySet) Remove(h Handle) {
	delete(s.m, h)
}

// Len reports the number of members.
func (s *IdentitySet) Len() int {
	return len(s.m)
}

// Range calls fn for every member, in unspecified order, stopping early if
// fn returns false.
func (s *IdentitySet) Range(fn func(Handle) bool) {
	for h := range s.m {
		if !fn(h) {
			return
		}
	}
}
