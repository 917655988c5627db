package main

import (
	"fmt"

	"github.com/joshuapare/dynarray/array/alloc"
)

// newProvider returns the storage provider selected by name.
func newProvider[T any](name string, budgetBytes int) (alloc.Provider[T], error) {
	switch name {
	case "", "heap":
		return alloc.Heap[T]{}, nil
	case "budget":
		if budgetBytes <= 0 {
			return nil, fmt.Errorf("--budget must be positive for the budget provider, got %d", budgetBytes)
		}
		return alloc.NewBudget[T](budgetBytes), nil
	case "mmap":
		p, err := alloc.NewMmap[T]()
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want heap, budget or mmap)", name)
	}
}
