package array

import (
	"errors"
	"fmt"

	"github.com/joshuapare/dynarray/array/alloc"
)

var (
	// ErrOutOfRange indicates an index at or beyond the array's size.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrAllocation indicates that a storage block could not be obtained.
	ErrAllocation = alloc.ErrAllocation

	// ErrIndexExhausted indicates that the next size or capacity is not
	// representable in the array's index type.
	ErrIndexExhausted = fmt.Errorf("%w: index type exhausted", ErrAllocation)
)

// RangeError describes a rejected index.
type RangeError struct {
	Op    string
	Index uint64
	Size  uint64
}

func (e *RangeError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("array: %s: index %d out of range (array is empty)", e.Op, e.Index)
	}
	return fmt.Sprintf("array: %s: index %d out of range [0:%d)", e.Op, e.Index, e.Size)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// LifecycleError reports an illegal slot transition. It is raised with panic,
// since reaching it means the array's own bookkeeping is broken.
type LifecycleError struct {
	Op   string
	Slot int
	Live bool
}

func (e *LifecycleError) Error() string {
	state := "uninitialized"
	if e.Live {
		state = "live"
	}
	return fmt.Sprintf("array: %s on %s slot %d", e.Op, state, e.Slot)
}
