package alloc

import "fmt"

// Budget is a heap provider that refuses to hold more than a fixed number of
// bytes across all outstanding blocks.
type Budget[T any] struct {
	heap  Heap[T]
	limit int
	inUse int
}

// NewBudget creates a Budget provider allowing at most limitBytes in flight.
func NewBudget[T any](limitBytes int) *Budget[T] {
	if limitBytes < 0 {
		limitBytes = 0
	}
	return &Budget[T]{limit: limitBytes}
}

// Alloc allocates n zeroed slots if the budget allows it.
func (b *Budget[T]) Alloc(n int) ([]T, error) {
	size, err := BlockBytes[T](n)
	if err != nil {
		return nil, err
	}
	if size > b.limit-b.inUse {
		return nil, fmt.Errorf("%w: need %d bytes, %d of %d in use", ErrBudget, size, b.inUse, b.limit)
	}
	slots, err := b.heap.Alloc(n)
	if err != nil {
		return nil, err
	}
	b.inUse += size
	return slots, nil
}

// Free returns the block's bytes to the budget.
func (b *Budget[T]) Free(slots []T) {
	size, err := BlockBytes[T](cap(slots))
	if err != nil {
		return
	}
	b.inUse -= size
	if b.inUse < 0 {
		b.inUse = 0
	}
}

// InUse reports the bytes held by outstanding blocks.
func (b *Budget[T]) InUse() int { return b.inUse }

// Limit reports the configured byte budget.
func (b *Budget[T]) Limit() int { return b.limit }
