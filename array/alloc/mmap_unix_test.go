//go:build unix

package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMmap_AllocWriteFree(t *testing.T) {
	m, err := NewMmap[point]()
	require.NoError(t, err)
	require.Positive(t, m.PageSize())

	slots, err := m.Alloc(1000)
	require.NoError(t, err)
	require.Len(t, slots, 1000)

	for i := range slots {
		require.Equal(t, point{}, slots[i], "mapped memory must start zeroed")
		slots[i] = point{X: int32(i), Y: -int32(i)}
	}
	require.Equal(t, point{X: 999, Y: -999}, slots[999])

	m.Free(slots)
}

func TestMmap_ZeroSlots(t *testing.T) {
	m, err := NewMmap[uint64]()
	require.NoError(t, err)

	slots, err := m.Alloc(0)
	require.NoError(t, err)
	require.Nil(t, slots)
	m.Free(slots)
}

func TestMmap_ZeroSizeElements(t *testing.T) {
	m, err := NewMmap[struct{}]()
	require.NoError(t, err)

	slots, err := m.Alloc(4)
	require.NoError(t, err)
	require.Len(t, slots, 4)
	m.Free(slots)
}

func TestMmap_RejectsPointerTypes(t *testing.T) {
	_, err := NewMmap[string]()
	require.ErrorIs(t, err, ErrPointerType)

	_, err = NewMmap[*point]()
	require.ErrorIs(t, err, ErrPointerType)
}

func TestMmap_DoubleFreePanics(t *testing.T) {
	m, err := NewMmap[uint64]()
	require.NoError(t, err)

	slots, err := m.Alloc(512)
	require.NoError(t, err)
	m.Free(slots)
	require.Panics(t, func() { m.Free(slots) })
}
