package array

import (
	"iter"

	"github.com/joshuapare/dynarray/array/alloc"
)

// Index is the set of unsigned integer types an Array can be indexed by.
type Index interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Destroyer is implemented by elements that hold resources to release when
// they leave the array.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by elements that need a deep copy when the array is
// copied. Elements without it are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// Array is a contiguous growable container of T indexed by L.
//
// The zero value is an empty array with no storage, ready to use.
type Array[T any, L Index] struct {
	capacity L
	size     L
	slots    []T
	live     slotSet

	provider alloc.Provider[T]
	onGrow   func(oldCap, newCap uint64)
}

// Vec is an Array indexed by the platform's natural unsigned integer.
type Vec[T any] = Array[T, uint]

// Option configures a new Array.
type Option[T any] func(*options[T])

type options[T any] struct {
	provider alloc.Provider[T]
	onGrow   func(oldCap, newCap uint64)
}

// WithProvider sets the provider the array obtains storage from. The default
// is alloc.Heap.
func WithProvider[T any](p alloc.Provider[T]) Option[T] {
	return func(o *options[T]) { o.provider = p }
}

// WithGrowHook registers fn to run after every successful growth.
func WithGrowHook[T any](fn func(oldCap, newCap uint64)) Option[T] {
	return func(o *options[T]) { o.onGrow = fn }
}

// Make returns an empty array with no storage.
func Make[T any, L Index](opts ...Option[T]) *Array[T, L] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	return &Array[T, L]{provider: o.provider, onGrow: o.onGrow}
}

// New returns an empty array with room for capacity elements.
func New[T any, L Index](capacity L, opts ...Option[T]) (*Array[T, L], error) {
	a := Make[T, L](opts...)
	if err := a.adopt(capacity); err != nil {
		return nil, err
	}
	return a, nil
}

// NewFilled returns an array holding count copies of v, with capacity count.
func NewFilled[T any, L Index](count L, v T, opts ...Option[T]) (*Array[T, L], error) {
	a, err := New[T](count, opts...)
	if err != nil {
		return nil, err
	}
	n := a.sizeOf(count)
	for i := 0; i < n; i++ {
		a.construct(i, copyOf(v))
		a.size++
	}
	return a, nil
}

// Size returns the number of live elements.
func (a *Array[T, L]) Size() L { return a.size }

// Cap returns the number of allocated slots.
func (a *Array[T, L]) Cap() L { return a.capacity }

// Empty reports whether the array has no live elements.
func (a *Array[T, L]) Empty() bool { return a.size == 0 }

// Data returns the live elements as a slice sharing the array's storage.
// Writes through it are visible to the array. The slice is valid until the
// next call that may grow, shrink or release the array, and it cannot be
// appended into the array's spare slots.
func (a *Array[T, L]) Data() []T {
	n := a.sizeOf(a.size)
	return a.slots[:n:n]
}

// All iterates over the live elements in index order.
func (a *Array[T, L]) All() iter.Seq2[L, T] {
	return func(yield func(L, T) bool) {
		for i := L(0); i < a.size; i++ {
			if !yield(i, a.slots[i]) {
				return
			}
		}
	}
}

// sizeOf converts an index no larger than the capacity to int. Such values
// always fit since they were validated when the block was allocated.
func (a *Array[T, L]) sizeOf(v L) int {
	return int(v)
}

func copyOf[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
