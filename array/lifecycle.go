package array

// slotSet records which slots of a block hold live elements.
type slotSet []uint64

func newSlotSet(n int) slotSet {
	return make(slotSet, (n+63)/64)
}

func (s slotSet) has(i int) bool { return s[i/64]&(1<<(uint(i)%64)) != 0 }
func (s slotSet) set(i int)      { s[i/64] |= 1 << (uint(i) % 64) }
func (s slotSet) unset(i int)    { s[i/64] &^= 1 << (uint(i) % 64) }

func (a *Array[T, L]) expect(op string, i int, live bool) {
	if a.live.has(i) != live {
		panic(&LifecycleError{Op: op, Slot: i, Live: !live})
	}
}

// construct moves v into uninitialized slot i.
func (a *Array[T, L]) construct(i int, v T) {
	a.expect("construct", i, false)
	a.slots[i] = v
	a.live.set(i)
}

// emplace builds a value in uninitialized slot i by running init on it.
// If init panics the slot is reset and stays uninitialized.
func (a *Array[T, L]) emplace(i int, init func(*T)) *T {
	a.expect("emplace", i, false)
	p := &a.slots[i]
	if init != nil {
		done := false
		defer func() {
			if !done {
				var zero T
				*p = zero
			}
		}()
		init(p)
		done = true
	}
	a.live.set(i)
	return p
}

// relocate moves live slot i into uninitialized slot j of dst. Slot i becomes
// uninitialized without being destroyed; its value now lives in dst.
func (a *Array[T, L]) relocate(i int, dst block[T], j int) {
	a.expect("relocate", i, true)
	if dst.live.has(j) {
		panic(&LifecycleError{Op: "relocate", Slot: j, Live: true})
	}
	dst.slots[j] = a.slots[i]
	dst.live.set(j)
	a.vacate(i)
}

// destroy ends the life of the element in slot i.
func (a *Array[T, L]) destroy(i int) {
	a.expect("destroy", i, true)
	if d, ok := any(&a.slots[i]).(Destroyer); ok {
		d.Destroy()
	}
	a.vacate(i)
}

// vacate marks slot i uninitialized and clears it to the zero value.
func (a *Array[T, L]) vacate(i int) {
	var zero T
	a.slots[i] = zero
	a.live.unset(i)
}

// destroyRange destroys slots [from, to) in order.
func (a *Array[T, L]) destroyRange(from, to int) {
	for i := from; i < to; i++ {
		a.destroy(i)
	}
}

// swapSlots exchanges the elements in live slots i and j.
func (a *Array[T, L]) swapSlots(i, j int) {
	a.expect("swap", i, true)
	a.expect("swap", j, true)
	a.slots[i], a.slots[j] = a.slots[j], a.slots[i]
}

// current returns the array's own block for relocation within it.
func (a *Array[T, L]) current() block[T] {
	return block[T]{slots: a.slots, live: a.live}
}
