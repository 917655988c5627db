// Package alloc provides slot-block providers for package array.
//
// # Overview
//
// A Provider hands out raw, zeroed blocks of element slots and takes them back
// when the owning array grows or is released. Providers know nothing about
// which slots are live; that bookkeeping belongs to the array.
//
//	type Provider[T any] interface {
//	    Alloc(n int) ([]T, error)
//	    Free(slots []T)
//	}
//
// # Implementations
//
// Heap: the default provider, backed by make.
//
//   - Rejects blocks larger than MaxBytes (DefaultMaxBytes when unset)
//   - Converts the "len out of range" panic make raises for blocks past the
//     platform's address limit into ErrAllocation
//   - Running out of memory below that limit is a fatal runtime error, not an
//     error return; set MaxBytes or use Budget to stay clear of it
//   - Free is a no-op; the garbage collector reclaims the block
//
// Budget: a Heap with a hard byte budget
//
//   - Fails with ErrBudget once the budget would be exceeded
//   - Free returns the block's bytes to the budget
//   - Useful for capping memory per array and for exercising failure paths
//
// Mmap: anonymous private mappings outside the Go heap (unix only)
//
//   - Only for pointer-free element types; NewMmap reports ErrPointerType otherwise
//   - Blocks must be returned with Free, or the mapping leaks
//
// # Usage Example
//
//	p, err := alloc.NewMmap[Point]()
//	if err != nil {
//	    return err
//	}
//	points, err := array.New[Point](uint(1024), array.WithProvider(p))
//	if err != nil {
//	    return err
//	}
//	defer points.Release()
//
// # Errors
//
// Every failure a provider reports wraps ErrAllocation, so callers can test
// with errors.Is(err, alloc.ErrAllocation) regardless of the provider.
//
// # Thread Safety
//
// Heap and Mmap are stateless and safe for concurrent use. Budget instances
// are not; share one between arrays only from a single goroutine.
package alloc
