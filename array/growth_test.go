package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/dynarray/array/alloc"
)

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		in     uint8
		want   uint8
		wantOK bool
	}{
		{0, 1, true},
		{1, 2, true},
		{3, 6, true},
		{64, 128, true},
		{128, 0, false},
		{255, 0, false},
	}
	for _, tt := range tests {
		got, ok := NextCapacity(tt.in)
		assert.Equal(t, tt.wantOK, ok, "NextCapacity(%d)", tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "NextCapacity(%d)", tt.in)
		}
	}
}

// Test_Growth_DoublesFromOne verifies the capacity sequence 1, 2, 4, 8, ...
// and that growth happens only when the array is full.
func Test_Growth_DoublesFromOne(t *testing.T) {
	a, err := New[int](uint(0))
	require.NoError(t, err)

	prev := a.Cap()
	for i := range 100 {
		require.NoError(t, a.PushBack(i))
		got := a.Cap()
		if got != prev {
			if prev == 0 {
				assert.Equal(t, uint(1), got)
			} else {
				assert.Equal(t, 2*prev, got, "growth must exactly double")
			}
			assert.Equal(t, prev+1, a.Size(), "growth only triggers on a full array")
		}
		prev = got
		requireConsistent(t, a)
	}
	assert.Equal(t, uint(128), a.Cap())
}

func Test_Growth_FromInitialCapacity(t *testing.T) {
	a, err := New[int](uint(3))
	require.NoError(t, err)
	for i := range 4 {
		require.NoError(t, a.PushBack(i))
	}
	assert.Equal(t, uint(6), a.Cap())
	assert.Equal(t, []int{0, 1, 2, 3}, a.Data())
}

func Test_Growth_PreservesElements(t *testing.T) {
	a := newLabels(t, 0, 20)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRST", names(a))
	assert.Equal(t, uint(32), a.Cap())
	requireConsistent(t, a)
}

func Test_Growth_Hook(t *testing.T) {
	type step struct{ from, to uint64 }
	var steps []step
	a, err := New(uint(0), WithGrowHook[int](func(from, to uint64) {
		steps = append(steps, step{from, to})
	}))
	require.NoError(t, err)

	for i := range 9 {
		require.NoError(t, a.PushBack(i))
	}
	assert.Equal(t, []step{{0, 1}, {1, 2}, {2, 4}, {4, 8}, {8, 16}}, steps)
}

func Test_Growth_IndexTypeExhausted(t *testing.T) {
	a, err := New[byte](uint8(0))
	require.NoError(t, err)
	for i := range 128 {
		require.NoError(t, a.PushBack(byte(i)))
	}
	require.Equal(t, uint8(128), a.Cap())

	err = a.PushBack(0xff)
	require.ErrorIs(t, err, ErrIndexExhausted)
	require.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, uint8(128), a.Size(), "failed append must not change size")
	assert.Equal(t, uint8(128), a.Cap(), "failed append must not change capacity")
	requireConsistent(t, a)
}

func Test_Growth_MaximumSize(t *testing.T) {
	a, err := New[byte](uint8(255))
	require.NoError(t, err)
	for i := range 255 {
		require.NoError(t, a.PushBack(byte(i)))
	}

	err = a.PushBack(0)
	require.ErrorIs(t, err, ErrIndexExhausted)
	assert.Equal(t, uint8(255), a.Size())
}

// Test_Growth_FailureLeavesArrayUntouched checks the strong guarantee: when
// the provider refuses the new block, size, capacity and contents survive.
func Test_Growth_FailureLeavesArrayUntouched(t *testing.T) {
	// 4 uint64 slots (32 bytes) plus the 16-byte block held while growing to them.
	budget := alloc.NewBudget[uint64](48)
	a, err := New(uint(0), WithProvider[uint64](budget))
	require.NoError(t, err)

	for i := range 4 {
		require.NoError(t, a.PushBack(uint64(i)))
	}
	require.Equal(t, uint(4), a.Cap())
	require.Equal(t, 32, budget.InUse())

	err = a.PushBack(4)
	require.ErrorIs(t, err, ErrAllocation)
	require.ErrorIs(t, err, alloc.ErrBudget)

	assert.Equal(t, uint(4), a.Size())
	assert.Equal(t, uint(4), a.Cap())
	assert.Equal(t, []uint64{0, 1, 2, 3}, a.Data())
	assert.Equal(t, 32, budget.InUse())
	requireConsistent(t, a)

	a.Release()
	assert.Equal(t, 0, budget.InUse())
}

func TestNew_AllocationFailure(t *testing.T) {
	_, err := New(uint(10), WithProvider[int64](alloc.NewBudget[int64](8)))
	require.ErrorIs(t, err, ErrAllocation)

	_, err = New(uint(8), WithProvider[uint64](alloc.Heap[uint64]{MaxBytes: 32}))
	require.ErrorIs(t, err, ErrAllocation)
}

func TestReserve(t *testing.T) {
	a := newLabels(t, 0, 3)
	require.Equal(t, uint(4), a.Cap())

	require.NoError(t, a.Reserve(2))
	assert.Equal(t, uint(4), a.Cap(), "Reserve never shrinks")

	require.NoError(t, a.Reserve(10))
	assert.Equal(t, uint(10), a.Cap())
	assert.Equal(t, "ABC", names(a))
	requireConsistent(t, a)

	for i := 3; i < 11; i++ {
		require.NoError(t, a.PushBack(labelAt(i)))
	}
	assert.Equal(t, uint(20), a.Cap(), "growth after Reserve doubles the reserved capacity")
}

// badProvider returns blocks of the wrong length.
type badProvider struct{ freed int }

func (p *badProvider) Alloc(n int) ([]int, error) { return make([]int, n+1), nil }
func (p *badProvider) Free([]int)                 { p.freed++ }

func TestAllocate_RejectsShortBlocks(t *testing.T) {
	p := &badProvider{}
	_, err := New(uint(4), WithProvider[int](p))
	require.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, 1, p.freed)
}
