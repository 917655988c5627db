package array

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// label mirrors the element used by the driver program: a number and a
// single-character name.
type label struct {
	Number int
	Name   string
}

func labelAt(i int) label {
	return label{Number: i, Name: string(rune('A' + i))}
}

// newLabels returns an array holding labels A.. for count entries, built by
// appending onto an array of the given initial capacity.
func newLabels(t *testing.T, capacity uint, count int) *Vec[label] {
	t.Helper()
	a, err := New[label](capacity)
	require.NoError(t, err)
	for i := range count {
		require.NoError(t, a.PushBack(labelAt(i)))
	}
	return a
}

func names[L Index](a *Array[label, L]) string {
	out := make([]byte, 0, int(a.Size()))
	for _, l := range a.All() {
		out = append(out, l.Name...)
	}
	return string(out)
}

// requireConsistent checks the size/capacity invariant and that exactly the
// slots [0,size) are marked live and everything past size is zeroed.
func requireConsistent[T comparable, L Index](t *testing.T, a *Array[T, L]) {
	t.Helper()
	require.LessOrEqual(t, a.Size(), a.Cap())
	require.Len(t, a.slots, int(a.Cap()))
	var zero T
	for i := 0; i < int(a.Cap()); i++ {
		live := i < int(a.Size())
		require.Equal(t, live, a.live.has(i), "slot %d live state", i)
		if !live {
			require.Equal(t, zero, a.slots[i], "uninitialized slot %d must hold the zero value", i)
		}
	}
}

// tracked records its id in a shared log when destroyed.
type tracked struct {
	id  int
	log *[]int
}

func (tr *tracked) Destroy() {
	if tr.log != nil {
		*tr.log = append(*tr.log, tr.id)
	}
}

// deep owns a slice and copies it on Clone.
type deep struct {
	vals []int
}

func (d deep) Clone() deep {
	return deep{vals: append([]int(nil), d.vals...)}
}
