// Package buf contains overflow-checked arithmetic for slot counts, byte sizes
// and conversions between index types and int.
package buf

import (
	"fmt"
	"math"
)

// Unsigned is the set of integer types usable as a slot index.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// the result would overflow int or either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SlotBytes returns the byte size of count slots of elemSize bytes each, or an
// error describing why the block cannot be sized.
//
//	n, err := buf.SlotBytes(capacity, int(unsafe.Sizeof(zero)))
//	if err != nil {
//	    return fmt.Errorf("alloc: %w", err)
//	}
func SlotBytes(count, elemSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative slot count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return total, nil
}

// ToInt converts an index to int, returning ok = false when it does not fit.
func ToInt[L Unsigned](v L) (int, bool) {
	if uint64(v) > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

// FromInt converts a non-negative int to L, returning ok = false when it does
// not fit.
func FromInt[L Unsigned](n int) (L, bool) {
	if n < 0 {
		return 0, false
	}
	v := L(n)
	if uint64(v) != uint64(n) {
		return 0, false
	}
	return v, true
}

// Incr returns v+1, or ok = false when v is the maximum value of L.
func Incr[L Unsigned](v L) (L, bool) {
	next := v + 1
	if next < v {
		return 0, false
	}
	return next, true
}

// Double returns 2*v, or ok = false when the product wraps.
func Double[L Unsigned](v L) (L, bool) {
	next := v * 2
	if v != 0 && next/2 != v {
		return 0, false
	}
	return next, true
}

// MaxOf returns the largest value representable by L.
func MaxOf[L Unsigned]() L {
	var zero L
	return ^zero
}
