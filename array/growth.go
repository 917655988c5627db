package array

import (
	"fmt"

	"github.com/joshuapare/dynarray/internal/buf"
)

// NextCapacity returns the capacity a full array of the given capacity grows
// to: 1 from empty, double otherwise. ok is false when the doubled capacity
// does not fit in L.
func NextCapacity[L Index](capacity L) (next L, ok bool) {
	if capacity == 0 {
		return 1, true
	}
	return buf.Double(capacity)
}

// ensureRoom grows the array if it cannot hold one more element.
func (a *Array[T, L]) ensureRoom() error {
	need, ok := buf.Incr(a.size)
	if !ok {
		return fmt.Errorf("%w: size %d is the maximum", ErrIndexExhausted, a.size)
	}
	if need <= a.capacity {
		return nil
	}
	next, ok := NextCapacity(a.capacity)
	if !ok {
		return fmt.Errorf("%w: cannot double capacity %d", ErrIndexExhausted, a.capacity)
	}
	return a.grow(next)
}

// Reserve grows the array so it can hold at least n elements without further
// allocation. It never shrinks.
func (a *Array[T, L]) Reserve(n L) error {
	if n <= a.capacity {
		return nil
	}
	return a.grow(n)
}

// grow moves every live element into a new block of the given capacity and
// frees the old one. The new block is allocated first; on failure the array
// is untouched.
func (a *Array[T, L]) grow(capacity L) error {
	b, err := a.allocate(capacity)
	if err != nil {
		return fmt.Errorf("array: grow to %d slots: %w", capacity, err)
	}

	n := a.sizeOf(a.size)
	for i := 0; i < n; i++ {
		a.relocate(i, b, i)
	}

	old := a.capacity
	a.freeBlock()
	a.slots, a.live, a.capacity = b.slots, b.live, capacity

	if a.onGrow != nil {
		a.onGrow(uint64(old), uint64(capacity))
	}
	return nil
}
