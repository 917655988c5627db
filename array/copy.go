package array

// Clone returns a deep copy with the same capacity and provider. Elements are
// copied in order, through Clone when T implements Cloner[T]. The grow hook
// is not copied; it stays with a.
func (a *Array[T, L]) Clone() (*Array[T, L], error) {
	c := &Array[T, L]{provider: a.provider}
	if err := c.adopt(a.capacity); err != nil {
		return nil, err
	}
	n := a.sizeOf(a.size)
	for i := 0; i < n; i++ {
		c.construct(i, copyOf(a.slots[i]))
		c.size++
	}
	return c, nil
}

// CopyFrom replaces the contents of a with a deep copy of src. On error a is
// unchanged. Copying an array onto itself is allowed.
func (a *Array[T, L]) CopyFrom(src *Array[T, L]) error {
	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	a.Swap(tmp)
	tmp.release()
	return nil
}

// Take moves the contents of a into a new array and leaves a empty, with
// zero capacity and no storage.
func (a *Array[T, L]) Take() *Array[T, L] {
	moved := &Array[T, L]{provider: a.provider, onGrow: a.onGrow}
	moved.Swap(a)
	return moved
}

// MoveFrom replaces the contents of a with those of src, releasing a's
// previous elements and leaving src empty. Moving an array onto itself is a
// no-op.
func (a *Array[T, L]) MoveFrom(src *Array[T, L]) {
	if a == src {
		return
	}
	tmp := src.Take()
	a.Swap(tmp)
	tmp.release()
}

// Swap exchanges the storage, size and capacity of a and b. Each block stays
// with the provider that allocated it.
func (a *Array[T, L]) Swap(b *Array[T, L]) {
	a.capacity, b.capacity = b.capacity, a.capacity
	a.size, b.size = b.size, a.size
	a.slots, b.slots = b.slots, a.slots
	a.live, b.live = b.live, a.live
	a.provider, b.provider = b.provider, a.provider
}
