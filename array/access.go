package array

// check validates i against the live range and converts it to a slot number.
func (a *Array[T, L]) check(op string, i L) (int, error) {
	if i >= a.size {
		return 0, &RangeError{Op: op, Index: uint64(i), Size: uint64(a.size)}
	}
	return a.sizeOf(i), nil
}

// At returns a pointer to the element at index i. The pointer is valid until
// the next call that may grow, shrink or release the array.
func (a *Array[T, L]) At(i L) (*T, error) {
	slot, err := a.check("At", i)
	if err != nil {
		return nil, err
	}
	return &a.slots[slot], nil
}

// Get returns a copy of the element at index i.
func (a *Array[T, L]) Get(i L) (T, error) {
	slot, err := a.check("Get", i)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.slots[slot], nil
}

// Set replaces the element at index i with v, destroying the old element.
func (a *Array[T, L]) Set(i L, v T) error {
	slot, err := a.check("Set", i)
	if err != nil {
		return err
	}
	a.destroy(slot)
	a.construct(slot, v)
	return nil
}

// First returns a pointer to the first element.
func (a *Array[T, L]) First() (*T, error) {
	slot, err := a.check("First", 0)
	if err != nil {
		return nil, err
	}
	return &a.slots[slot], nil
}

// Last returns a pointer to the last element.
func (a *Array[T, L]) Last() (*T, error) {
	i, err := a.LastIndex()
	if err != nil {
		return nil, &RangeError{Op: "Last", Size: 0}
	}
	return &a.slots[a.sizeOf(i)], nil
}

// LastIndex returns the index of the last element, or a *RangeError when the
// array is empty.
func (a *Array[T, L]) LastIndex() (L, error) {
	if a.size == 0 {
		return 0, &RangeError{Op: "LastIndex", Size: 0}
	}
	return a.size - 1, nil
}

// PushBack appends v, growing the array first if it is full.
func (a *Array[T, L]) PushBack(v T) error {
	if err := a.ensureRoom(); err != nil {
		return err
	}
	a.construct(a.sizeOf(a.size), v)
	a.size++
	return nil
}

// EmplaceBack appends a new element built in place by init, which receives a
// pointer to a zeroed slot. It returns a pointer to the new element. A nil
// init appends the zero value.
func (a *Array[T, L]) EmplaceBack(init func(*T)) (*T, error) {
	if err := a.ensureRoom(); err != nil {
		return nil, err
	}
	p := a.emplace(a.sizeOf(a.size), init)
	a.size++
	return p, nil
}
