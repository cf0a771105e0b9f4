// SPDX-License-Identifier: MIT
//
// File: arena.go
// Role: Slot storage for node values addressed by generation-checked handles.
// Invariants:
//   - A handle resolves iff its slot is live and its generation matches.
//   - Releasing a slot bumps its generation, so every outstanding handle to it
//     goes stale at once.
//   - Generations start at 1; the zero handle never resolves.

package core

// handle is a stable, non-owning reference to a node slot.
type handle struct {
	slot uint32
	gen  uint32
}

// nodeSlot holds one node value. value stays readable after release until the
// slot is reused, which keeps ordering of stale cursor records panic-free.
type nodeSlot[N any] struct {
	value N
	gen   uint32
	live  bool
}

// arena owns node values. It never shrinks; released slots are recycled LIFO.
type arena[N any] struct {
	slots []nodeSlot[N]
	free  []uint32
	live  int
}

// alloc stores v in a free slot (or a new one) and returns its handle.
// Complexity: O(1) amortized.
func (a *arena[N]) alloc(v N) handle {
	a.live++
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[i]
		s.value = v
		s.live = true

		return handle{slot: i, gen: s.gen}
	}
	a.slots = append(a.slots, nodeSlot[N]{value: v, gen: 1, live: true})

	return handle{slot: uint32(len(a.slots) - 1), gen: 1}
}

// release frees the slot behind h. Releasing a stale handle is a no-op.
// Complexity: O(1).
func (a *arena[N]) release(h handle) bool {
	if !a.valid(h) {
		return false
	}
	s := &a.slots[h.slot]
	s.live = false
	s.gen++
	a.free = append(a.free, h.slot)
	a.live--

	return true
}

// valid reports whether h still refers to a live slot.
func (a *arena[N]) valid(h handle) bool {
	return int(h.slot) < len(a.slots) && a.slots[h.slot].live && a.slots[h.slot].gen == h.gen
}

// resolve returns the value behind h, or false if h is stale.
func (a *arena[N]) resolve(h handle) (N, bool) {
	if !a.valid(h) {
		var zero N
		return zero, false
	}

	return a.slots[h.slot].value, true
}

// value returns the slot's current value without a liveness check.
// Only comparators use it; out-of-range handles yield the zero value.
func (a *arena[N]) value(h handle) N {
	if int(h.slot) >= len(a.slots) {
		var zero N
		return zero
	}

	return a.slots[h.slot].value
}

// len returns the number of live slots.
func (a *arena[N]) len() int { return a.live }
