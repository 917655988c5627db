package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation indicates that a slot block could not be obtained.
	ErrAllocation = errors.New("alloc: allocation failed")

	// ErrBudget indicates that a Budget provider would exceed its byte limit.
	ErrBudget = fmt.Errorf("%w: budget exhausted", ErrAllocation)

	// ErrPointerType indicates an element type that cannot live outside the Go heap.
	ErrPointerType = errors.New("alloc: element type contains pointers")

	// ErrUnsupported indicates a provider that is not available on this platform.
	ErrUnsupported = errors.New("alloc: provider not supported on this platform")
)
