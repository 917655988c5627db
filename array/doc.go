// Package array implements a contiguous, growable container with explicit
// control over capacity, element lifetime and removal order.
//
// # Overview
//
// An Array[T, L] owns one block of capacity slots obtained from an
// alloc.Provider. The first size slots hold live elements; the rest are
// uninitialized and always hold the zero value of T, so stale references are
// never kept alive. L is the unsigned index type used for sizes and indices;
// Vec[T] uses uint.
//
//	labels, err := array.New[string](uint(0))
//	if err != nil {
//	    return err
//	}
//	for _, s := range []string{"A", "B", "C"} {
//	    if err := labels.PushBack(s); err != nil {
//	        return err
//	    }
//	}
//	last, _ := labels.Last() // *string pointing at "C"
//
// # Growth
//
// Appending to a full array grows it to twice its capacity (or to 1 from 0).
// The new block is acquired before anything is moved, so a failed growth
// leaves the array exactly as it was. Capacity never shrinks on its own;
// Release returns the block and resets the array to its empty state.
//
// # Element Lifecycle
//
// Every slot is either uninitialized or live. Elements become live through
// PushBack, EmplaceBack, Set or copying, and stop being live through removal,
// Clear or Release. If *T implements Destroyer, Destroy runs exactly once for
// each element as it stops being live; it never runs for a slot whose value
// has been moved elsewhere. If T implements Cloner[T], Clone is used whenever
// an element is copied.
//
// # Removal
//
//   - PopBack: removes the last element, O(1)
//   - ShiftRemove: removes index i and shifts the tail down, preserving order, O(size-i)
//   - SwapRemove: moves the last element into index i, O(1), does not preserve order
//
// # Errors
//
// Index-based operations return a *RangeError (matching ErrOutOfRange) before
// touching anything. Allocation failures match ErrAllocation.
//
// # Thread Safety
//
// Arrays are not safe for concurrent use. Guard shared arrays with a mutex.
package array
