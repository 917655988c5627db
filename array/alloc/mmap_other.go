//go:build !unix

package alloc

// Mmap is unavailable on this platform; NewMmap always fails.
type Mmap[T any] struct{}

// NewMmap reports ErrUnsupported on platforms without mmap.
func NewMmap[T any]() (*Mmap[T], error) {
	return nil, ErrUnsupported
}

// Alloc always fails.
func (m *Mmap[T]) Alloc(int) ([]T, error) {
	return nil, ErrUnsupported
}

// Free is a no-op.
func (m *Mmap[T]) Free([]T) {}

// PageSize reports zero.
func (m *Mmap[T]) PageSize() int { return 0 }
