// SPDX-License-Identifier: MIT

package arena

import (
	"fmt"
	"iter"
	"math"
)

// slot is one storage cell. nextFree links vacant slots; it holds the next
// free index plus one, so the zero value terminates the list.
type slot[V any] struct {
	value      V
	generation uint32
	nextFree   uint32
	retired    bool
}

// Arena stores values of type V in reusable, generation-checked slots.
// The zero Arena is ready to use. An Arena is not safe for concurrent mutation.
type Arena[V any] struct {
	slots    []slot[V]
	freeHead uint32 // first free index plus one; 0 when the list is empty
	length   int

	// freeDirty is set by InsertAt, which occupies slots without unlinking
	// them; the free list is rebuilt before it is next consulted.
	freeDirty bool
}

// New returns an empty Arena.
func New[V any]() *Arena[V] {
	return &Arena[V]{}
}

// WithCapacity returns an empty Arena with room for n values before growing.
func WithCapacity[V any](n int) *Arena[V] {
	if n < 0 {
		n = 0
	}

	return &Arena[V]{slots: make([]slot[V], 0, n)}
}

// Len returns the number of live values.
func (a *Arena[V]) Len() int { return a.length }

// Cap returns the number of slots (live, vacant and retired).
func (a *Arena[V]) Cap() int { return len(a.slots) }

// Insert stores v and returns its key.
// Complexity: O(1) amortized.
func (a *Arena[V]) Insert(v V) Key {
	return a.InsertWithKey(func(Key) V { return v })
}

// InsertWithKey reserves a key, calls fn with it and stores the result.
// It lets a value embed its own key. fn must not mutate the arena.
// Complexity: O(1) amortized plus the cost of fn.
func (a *Arena[V]) InsertWithKey(fn func(Key) V) Key {
	a.ensureFreeList()

	var idx uint32
	if a.freeHead != 0 {
		// 1. Reuse the head of the free list.
		idx = a.freeHead - 1
		s := &a.slots[idx]
		a.freeHead = s.nextFree
		s.generation++ // even → odd
	} else {
		// 2. Append a fresh slot at generation 1.
		if uint64(len(a.slots)) >= math.MaxUint32-1 {
			panic("arena: slot index space exhausted")
		}
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[V]{generation: 1})
	}

	s := &a.slots[idx]
	s.nextFree = 0
	k := Key{index: idx, generation: s.generation}
	s.value = fn(k)
	a.length++

	return k
}

// lookup returns the live slot named by k, or nil.
func (a *Arena[V]) lookup(k Key) *slot[V] {
	if k.IsNull() || int64(k.index) >= int64(len(a.slots)) {
		return nil
	}
	s := &a.slots[k.index]
	if s.generation != k.generation || !occupied(s.generation) {
		return nil
	}

	return s
}

// Contains reports whether k names a live value.
func (a *Arena[V]) Contains(k Key) bool { return a.lookup(k) != nil }

// Get returns a copy of the value stored under k.
// The boolean is false for null, stale or out-of-range keys.
func (a *Arena[V]) Get(k Key) (V, bool) {
	s := a.lookup(k)
	if s == nil {
		var zero V
		return zero, false
	}

	return s.value, true
}

// GetMut returns a pointer to the value stored under k, or nil and false.
// The pointer stays valid until the next insertion that grows the arena.
func (a *Arena[V]) GetMut(k Key) (*V, bool) {
	s := a.lookup(k)
	if s == nil {
		return nil, false
	}

	return &s.value, true
}

// Remove deletes the value stored under k and returns it.
// Removing an absent or stale key is a no-op reporting false.
// Complexity: O(1).
func (a *Arena[V]) Remove(k Key) (V, bool) {
	var zero V
	s := a.lookup(k)
	if s == nil {
		return zero, false
	}
	a.ensureFreeList()

	v := s.value
	s.value = zero
	a.length--
	a.release(k.index)

	return v, true
}

// release marks an occupied slot vacant and links it into the free list,
// or retires it when its generation cannot grow any further.
func (a *Arena[V]) release(idx uint32) {
	s := &a.slots[idx]
	if s.generation >= math.MaxUint32-1 {
		// odd → even would leave no room for another odd generation.
		s.generation = 0
		s.retired = true
		s.nextFree = 0

		return
	}
	s.generation++ // odd → even
	s.nextFree = a.freeHead
	a.freeHead = idx + 1
}

// Clear removes every value. Keys issued before Clear stay stale afterwards.
// Complexity: O(capacity).
func (a *Arena[V]) Clear() {
	var zero V
	for i := range a.slots {
		s := &a.slots[i]
		if occupied(s.generation) {
			s.value = zero
			a.release(uint32(i))
		}
	}
	a.length = 0
	a.freeDirty = true
	a.ensureFreeList()
}

// Clone returns an independent copy that resolves exactly the same keys.
// Values are copied shallowly.
// Complexity: O(capacity).
func (a *Arena[V]) Clone() *Arena[V] {
	c := *a
	c.slots = append([]slot[V](nil), a.slots...)

	return &c
}

// Keys returns an iterator over live keys in ascending slot order.
//
// The iterator reads the arena at every step: removing entries between steps
// is safe (removed keys are simply not produced), but no ordering or
// completeness guarantee holds for entries inserted during iteration.
func (a *Arena[V]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for i := 0; i < len(a.slots); i++ {
			g := a.slots[i].generation
			if !occupied(g) {
				continue
			}
			if !yield(Key{index: uint32(i), generation: g}) {
				return
			}
		}
	}
}

// All returns an iterator over live (key, *value) pairs in ascending slot order.
// The same mutation caveats as Keys apply.
func (a *Arena[V]) All() iter.Seq2[Key, *V] {
	return func(yield func(Key, *V) bool) {
		for i := 0; i < len(a.slots); i++ {
			s := &a.slots[i]
			if !occupied(s.generation) {
				continue
			}
			if !yield(Key{index: uint32(i), generation: s.generation}, &s.value) {
				return
			}
		}
	}
}

// InsertAt stores v under exactly the key k. It exists to restore a
// previously captured arena (for example a decoded snapshot): the restored
// arena resolves the same keys the original did.
//
// Slots skipped over while growing become free slots.
// Complexity: O(k.Index()) when growing, O(1) otherwise; the free list is
// rebuilt lazily once, before the next Insert or Remove.
func (a *Arena[V]) InsertAt(k Key, v V) error {
	if k.IsNull() || !occupied(k.generation) {
		return fmt.Errorf("%w: %s", ErrNullKey, k)
	}
	if k.index >= math.MaxUint32-1 {
		return fmt.Errorf("%w: %d", ErrIndexRange, k.index)
	}

	for uint32(len(a.slots)) <= k.index {
		a.slots = append(a.slots, slot[V]{})
	}

	s := &a.slots[k.index]
	switch {
	case occupied(s.generation):
		return fmt.Errorf("%w: %s", ErrOccupied, k)
	case s.retired || s.generation > k.generation:
		return fmt.Errorf("%w: %s", ErrStaleKey, k)
	}

	s.generation = k.generation
	s.value = v
	s.nextFree = 0
	a.length++
	a.freeDirty = true

	return nil
}

// Vacant returns an iterator over the keys that vacant, previously used
// slots would have carried at their last removal: index plus the current
// (even) generation. Slots never occupied and retired slots are skipped.
// Together with All it captures enough state for RestoreVacant to rebuild an
// arena that never reissues an old key.
func (a *Arena[V]) Vacant() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for i := 0; i < len(a.slots); i++ {
			s := &a.slots[i]
			if occupied(s.generation) || s.retired || s.generation == 0 {
				continue
			}
			if !yield(Key{index: uint32(i), generation: s.generation}) {
				return
			}
		}
	}
}

// RestoreVacant marks the slot named by k as vacant at k's generation, so
// the next insertion into it issues a key newer than any it held before.
// k must carry an even, non-zero generation as produced by Vacant.
// Complexity: O(k.Index()) when growing, O(1) otherwise.
func (a *Arena[V]) RestoreVacant(k Key) error {
	if k.IsNull() || occupied(k.generation) {
		return fmt.Errorf("%w: %s is not a vacant key", ErrNullKey, k)
	}
	if k.index >= math.MaxUint32-1 {
		return fmt.Errorf("%w: %d", ErrIndexRange, k.index)
	}

	for uint32(len(a.slots)) <= k.index {
		a.slots = append(a.slots, slot[V]{})
	}

	s := &a.slots[k.index]
	switch {
	case occupied(s.generation):
		return fmt.Errorf("%w: %s", ErrOccupied, k)
	case s.retired || s.generation > k.generation:
		return fmt.Errorf("%w: %s", ErrStaleKey, k)
	}
	s.generation = k.generation
	a.freeDirty = true

	return nil
}

// Retired returns an iterator over the indices of retired slots, in
// ascending order. RestoreRetired puts them back.
func (a *Arena[V]) Retired() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := 0; i < len(a.slots); i++ {
			if a.slots[i].retired && !yield(uint32(i)) {
				return
			}
		}
	}
}

// RestoreRetired retires the never-used slot at index, so no key for it is
// ever issued again.
// Complexity: O(index) when growing, O(1) otherwise.
func (a *Arena[V]) RestoreRetired(index uint32) error {
	if index >= math.MaxUint32-1 {
		return fmt.Errorf("%w: %d", ErrIndexRange, index)
	}

	for uint32(len(a.slots)) <= index {
		a.slots = append(a.slots, slot[V]{})
	}

	s := &a.slots[index]
	switch {
	case occupied(s.generation):
		return fmt.Errorf("%w: slot %d", ErrOccupied, index)
	case s.retired || s.generation != 0:
		return fmt.Errorf("%w: slot %d already used", ErrStaleKey, index)
	}
	s.retired = true
	a.freeDirty = true

	return nil
}

// Issued reports whether k names a generation the slot has already reached,
// so no later insertion can return k. The null key and keys past the end of
// the arena report false.
func (a *Arena[V]) Issued(k Key) bool {
	if k.IsNull() || int64(k.index) >= int64(len(a.slots)) {
		return false
	}
	s := &a.slots[k.index]

	return s.retired || k.generation <= s.generation
}

// ensureFreeList rebuilds the free list after InsertAt or Clear so that it
// links exactly the vacant, non-retired slots in ascending order.
func (a *Arena[V]) ensureFreeList() {
	if !a.freeDirty {
		return
	}
	a.freeDirty = false
	a.freeHead = 0
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		if occupied(s.generation) || s.retired {
			continue
		}
		s.nextFree = a.freeHead
		a.freeHead = uint32(i) + 1
	}
}
