package alloc

import (
	"math"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
}

func TestHeap_AllocZeroed(t *testing.T) {
	var h Heap[point]
	slots, err := h.Alloc(16)
	require.NoError(t, err)
	require.Len(t, slots, 16)
	require.Equal(t, 16, cap(slots))
	for i := range slots {
		require.Equal(t, point{}, slots[i])
	}
	h.Free(slots)
}

func TestHeap_ZeroSlots(t *testing.T) {
	slots, err := Heap[int]{}.Alloc(0)
	require.NoError(t, err)
	require.Nil(t, slots)
}

func TestHeap_RespectsMaxBytes(t *testing.T) {
	h := Heap[uint64]{MaxBytes: 64}

	_, err := h.Alloc(8)
	require.NoError(t, err)

	_, err = h.Alloc(9)
	require.ErrorIs(t, err, ErrAllocation)
}

func TestHeap_RejectsImpossibleSizes(t *testing.T) {
	_, err := Heap[uint64]{}.Alloc(-1)
	require.ErrorIs(t, err, ErrAllocation)

	_, err = Heap[[1 << 20]byte]{}.Alloc(math.MaxInt / 2)
	require.ErrorIs(t, err, ErrAllocation)
}

func TestHeap_LenOutOfRangeBecomesError(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("the address limit equals MaxInt on 32-bit platforms")
	}
	// Within MaxBytes but past the address space make can ever serve.
	h := Heap[byte]{MaxBytes: math.MaxInt}
	slots, err := h.Alloc(math.MaxInt)
	require.ErrorIs(t, err, ErrAllocation)
	require.ErrorContains(t, err, "len out of range")
	require.Nil(t, slots)
}

func TestBudget_Accounting(t *testing.T) {
	b := NewBudget[uint32](64)
	require.Equal(t, 64, b.Limit())

	first, err := b.Alloc(8)
	require.NoError(t, err)
	require.Equal(t, 32, b.InUse())

	second, err := b.Alloc(8)
	require.NoError(t, err)
	require.Equal(t, 64, b.InUse())

	_, err = b.Alloc(1)
	require.ErrorIs(t, err, ErrBudget)
	require.ErrorIs(t, err, ErrAllocation)
	require.Equal(t, 64, b.InUse(), "failed alloc must not consume budget")

	b.Free(first)
	require.Equal(t, 32, b.InUse())
	b.Free(second)
	require.Equal(t, 0, b.InUse())
}

func TestBudget_NegativeLimit(t *testing.T) {
	b := NewBudget[byte](-10)
	require.Equal(t, 0, b.Limit())

	_, err := b.Alloc(1)
	require.ErrorIs(t, err, ErrBudget)
}

func TestHasPointers(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int", reflect.TypeFor[int](), false},
		{"float64", reflect.TypeFor[float64](), false},
		{"plain struct", reflect.TypeFor[point](), false},
		{"byte array", reflect.TypeFor[[16]byte](), false},
		{"empty array of pointers", reflect.TypeFor[[0]*int](), false},
		{"string", reflect.TypeFor[string](), true},
		{"pointer", reflect.TypeFor[*int](), true},
		{"slice", reflect.TypeFor[[]int](), true},
		{"map", reflect.TypeFor[map[int]int](), true},
		{"interface", reflect.TypeFor[any](), true},
		{"struct with string", reflect.TypeFor[struct {
			N    int
			Name string
		}](), true},
		{"array of pointers", reflect.TypeFor[[2]*point](), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HasPointers(tt.typ))
		})
	}
}
