package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/joshuapare/dynarray/internal/buf"
)

// DefaultMaxBytes is the largest block Heap hands out when MaxBytes is unset.
const DefaultMaxBytes = math.MaxInt / 2

// Provider acquires and releases blocks of element slots.
//
// Alloc returns a zeroed block with len == cap == n, or an error wrapping
// ErrAllocation. Free receives exactly the block Alloc returned.
type Provider[T any] interface {
	Alloc(n int) ([]T, error)
	Free(slots []T)
}

// ElemSize returns the size in bytes of one slot of T.
func ElemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BlockBytes returns the byte size of an n-slot block of T.
func BlockBytes[T any](n int) (int, error) {
	size, err := buf.SlotBytes(n, ElemSize[T]())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	return size, nil
}

// Heap allocates slot blocks on the Go heap.
type Heap[T any] struct {
	// MaxBytes caps a single block; zero means DefaultMaxBytes.
	MaxBytes int
}

// Alloc allocates n zeroed slots. Requests above MaxBytes, and requests make
// rejects as out of range, fail with ErrAllocation. A request within range
// that the system cannot satisfy is fatal, as for any Go allocation.
func (h Heap[T]) Alloc(n int) (slots []T, err error) {
	size, err := BlockBytes[T](n)
	if err != nil {
		return nil, err
	}
	limit := h.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	if size > limit {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrAllocation, size, limit)
	}
	if n == 0 {
		return nil, nil
	}

	// make panics with "len out of range" past the address limit.
	defer func() {
		if r := recover(); r != nil {
			slots = nil
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	return make([]T, n), nil
}

// Free is a no-op; the block is reclaimed by the garbage collector.
func (Heap[T]) Free([]T) {}
