package array

// LinearSearch returns the index of the first element e for which
// eq(e, value) is true, or a.Size() if there is none.
func LinearSearch[T any, L Index, V any](a *Array[T, L], value V, eq func(T, V) bool) L {
	var i L
	for i < a.size && !eq(a.slots[i], value) {
		i++
	}
	return i
}

// BinarySearch returns the smallest index i for which cmp(e_i, value) >= 0,
// or a.Size() if there is none. The elements must be sorted ascending with
// respect to cmp; otherwise the result is unspecified.
func BinarySearch[T any, L Index, V any](a *Array[T, L], value V, cmp func(T, V) int) L {
	lo, hi := L(0), a.size
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(a.slots[mid], value) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
