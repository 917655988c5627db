package array

// PopBack destroys the last element. It returns a *RangeError when the
// array is empty.
func (a *Array[T, L]) PopBack() error {
	if a.size == 0 {
		return &RangeError{Op: "PopBack", Size: 0}
	}
	a.popBack()
	return nil
}

func (a *Array[T, L]) popBack() {
	a.destroy(a.sizeOf(a.size - 1))
	a.size--
}

// ShiftRemove removes the element at index i, moving every later element one
// slot down. The order of the remaining elements is preserved. Cost is
// proportional to the number of elements after i.
func (a *Array[T, L]) ShiftRemove(i L) error {
	slot, err := a.check("ShiftRemove", i)
	if err != nil {
		return err
	}
	a.destroy(slot)
	n := a.sizeOf(a.size)
	cur := a.current()
	for j := slot + 1; j < n; j++ {
		a.relocate(j, cur, j-1)
	}
	a.size--
	return nil
}

// SwapRemove removes the element at index i by exchanging it with the last
// element and popping. It runs in constant time but does not preserve order.
func (a *Array[T, L]) SwapRemove(i L) error {
	slot, err := a.check("SwapRemove", i)
	if err != nil {
		return err
	}
	if last := a.sizeOf(a.size - 1); slot != last {
		a.swapSlots(slot, last)
	}
	a.popBack()
	return nil
}

// Clear destroys every element. Capacity is unchanged.
func (a *Array[T, L]) Clear() {
	a.destroyRange(0, a.sizeOf(a.size))
	a.size = 0
}
