//go:build unix

package alloc

import (
	"fmt"
	"reflect"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mmap allocates slot blocks from anonymous private memory mappings, outside
// the Go heap. Every block must be returned with Free.
type Mmap[T any] struct {
	elemSize int
}

// NewMmap creates an Mmap provider for T. T must be pointer-free, since the
// garbage collector does not scan mapped memory.
func NewMmap[T any]() (*Mmap[T], error) {
	t := reflect.TypeFor[T]()
	if HasPointers(t) {
		return nil, fmt.Errorf("%w: %s", ErrPointerType, t)
	}
	return &Mmap[T]{elemSize: ElemSize[T]()}, nil
}

// Alloc maps a block of n zeroed slots.
func (m *Mmap[T]) Alloc(n int) ([]T, error) {
	size, err := BlockBytes[T](n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if size == 0 {
		// Zero-size elements need no backing memory.
		return make([]T, n), nil
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrAllocation, size, err)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mem))), n), nil
}

// Free unmaps a block returned by Alloc. It panics if the block was not
// mapped by this package, which means it was freed twice.
func (m *Mmap[T]) Free(slots []T) {
	if cap(slots) == 0 || m.elemSize == 0 {
		return
	}
	mem := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(slots))), cap(slots)*m.elemSize)
	if err := unix.Munmap(mem); err != nil {
		panic(fmt.Sprintf("alloc: munmap %d bytes: %v", len(mem), err))
	}
}

// PageSize reports the size of one mapping page.
func (m *Mmap[T]) PageSize() int {
	return unix.Getpagesize()
}
