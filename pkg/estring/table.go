package estring

// table.go implements the open-addressing lookup table that backs every
// Shard: a set of Handles, hashed by reading the precomputed Digest out of
// each Entry header rather than rehashing its bytes (spec.md §4.2 — "the
// table's hash function reads hash directly from each Entry header").
//
// The probing and growth shape follows github.com/philpearl/intern's
// Intern type (_examples/other_examples, "a string interning library"):
// linear probing into a power-of-two slice, grown by doubling once the load
// factor crosses 3/4. We do not reuse philpearl's incremental
// (amortized-across-calls) resize, since a Shard already serializes every
// insert behind its own lock and a single full rehash costs the same total
// work; the simpler all-at-once grow keeps this file small.
//
// © 2025 estring authors. MIT License.

import "github.com/Voskan/estring/internal/digest"

const initialTableCapacity = 8 // must stay a power of two

// probeTable is a set of Handles. The zero value is ready to use.
type probeTable struct {
	slots []Handle
	count int
}

// find looks up s (whose precomputed digest is h) in the table. It never
// allocates.
func (t *probeTable) find(s string, h digest.Digest) (Handle, bool) {
	if len(t.slots) == 0 {
		return Handle{}, false
	}
	mask := uintptr(len(t.slots) - 1)
	idx := uintptr(h.Hash()) & mask
	for {
		slot := t.slots[idx]
		if slot.IsZero() {
			return Handle{}, false
		}
		if slot.Digest() == h && slot.EqualString(s) {
			return slot, true
		}
		idx = (idx + 1) & mask
	}
}

// growIfNeeded grows the table ahead of an insert if the load factor would
// otherwise reach or exceed 3/4. Must be called before every insert.
func (t *probeTable) growIfNeeded() {
	if len(t.slots) == 0 {
		t.slots = make([]Handle, initialTableCapacity)
		return
	}
	if (t.count+1)*4 < len(t.slots)*3 {
		return
	}
	old := t.slots
	t.slots = make([]Handle, len(old)*2)
	t.count = 0
	for _, h := range old {
		if !h.IsZero() {
			t.insertNoGrow(h)
		}
	}
}

// insertNoGrow inserts h, which the caller has already verified is absent.
// growIfNeeded must have been called first so an empty slot is guaranteed to
// exist.
func (t *probeTable) insertNoGrow(h Handle) {
	mask := uintptr(len(t.slots) - 1)
	idx := uintptr(h.Digest().Hash()) & mask
	for !t.slots[idx].IsZero() {
		idx = (idx + 1) & mask
	}
	t.slots[idx] = h
	t.count++
}
