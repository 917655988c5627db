package array

import (
	"fmt"

	"github.com/joshuapare/dynarray/array/alloc"
	"github.com/joshuapare/dynarray/internal/buf"
)

// block is one storage allocation together with its slot states.
type block[T any] struct {
	slots []T
	live  slotSet
}

func (a *Array[T, L]) alloc() alloc.Provider[T] {
	if a.provider == nil {
		return alloc.Heap[T]{}
	}
	return a.provider
}

// allocate acquires a block of n uninitialized slots. A zero-sized request
// yields the empty block.
func (a *Array[T, L]) allocate(n L) (block[T], error) {
	if n == 0 {
		return block[T]{}, nil
	}
	count, ok := buf.ToInt(n)
	if !ok {
		return block[T]{}, fmt.Errorf("%w: %d slots do not fit in int", ErrAllocation, n)
	}
	p := a.alloc()
	slots, err := p.Alloc(count)
	if err != nil {
		return block[T]{}, err
	}
	if len(slots) != count {
		p.Free(slots)
		return block[T]{}, fmt.Errorf("%w: provider returned %d slots, want %d", ErrAllocation, len(slots), count)
	}
	return block[T]{slots: slots, live: newSlotSet(count)}, nil
}

// adopt installs a fresh block of capacity slots into an array that owns none.
func (a *Array[T, L]) adopt(capacity L) error {
	b, err := a.allocate(capacity)
	if err != nil {
		return err
	}
	a.slots, a.live, a.capacity = b.slots, b.live, capacity
	return nil
}

// freeBlock returns the current block to the provider. Every slot must
// already be uninitialized.
func (a *Array[T, L]) freeBlock() {
	if a.slots != nil {
		a.alloc().Free(a.slots)
	}
	a.slots, a.live = nil, nil
	a.capacity = 0
}

// release destroys every live element and frees the block, leaving the
// array in its empty state. It is a no-op for an array without storage.
func (a *Array[T, L]) release() {
	a.destroyRange(0, a.sizeOf(a.size))
	a.size = 0
	a.freeBlock()
}

// Release destroys all elements and returns the storage block to its
// provider. The array is left empty, with zero capacity, and may be reused.
func (a *Array[T, L]) Release() {
	a.release()
}
