package smallset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteSet_AddRemove(t *testing.T) {
	var bs ByteSet // zero value is empty and usable
	assert.True(t, bs.IsEmpty())

	changed, err := bs.Add(5)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = bs.Add(5)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = bs.Add(32)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.True(t, bs.Contains(5))
	assert.False(t, bs.Contains(6))
	assert.False(t, bs.Contains(-1))
	assert.False(t, bs.Contains(99))

	assert.True(t, bs.Remove(5))
	assert.False(t, bs.Remove(5))
	assert.False(t, bs.Remove(99)) // out of range, never a member
	assert.True(t, bs.IsEmpty())
}

func TestByteSet_BulkOps(t *testing.T) {
	bs := NewByteSet(Empty())

	changed, err := bs.AddAll(1, 2, 3, 4)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 4, bs.Len())

	changed, err = bs.AddAll(1, 2)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = bs.AddAll(5, 40)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.True(t, bs.RemoveAll(1, 99))
	assert.Equal(t, []uint8{2, 3, 4}, bs.ToArray())

	assert.True(t, bs.RetainAll(2, 3, 77))
	assert.Equal(t, []uint8{2, 3}, bs.ToArray())
	assert.False(t, bs.RetainAll(2, 3))

	bs.Clear()
	assert.True(t, bs.IsEmpty())
}

func TestByteSet_Polls(t *testing.T) {
	bs := NewByteSet(mustOf(t, 4, 9, 27))

	first, ok := bs.PollFirst().Value()
	assert.True(t, ok)
	assert.Equal(t, uint8(4), first)

	last, ok := bs.PollLast().Value()
	assert.True(t, ok)
	assert.Equal(t, uint8(27), last)

	assert.Equal(t, []uint8{9}, bs.ToArray())

	bs.Clear()
	assert.True(t, bs.PollFirst().IsEmpty())
	assert.True(t, bs.PollLast().IsEmpty())
}

func TestByteSet_Navigation(t *testing.T) {
	bs := NewByteSet(mustOf(t, 1, 2, 3, 31))

	first, ok := bs.First().Value()
	assert.True(t, ok)
	assert.Equal(t, uint8(1), first)

	last, ok := bs.Last().Value()
	assert.True(t, ok)
	assert.Equal(t, uint8(31), last)

	floor, err := bs.Floor(30)
	require.NoError(t, err)
	assert.Equal(t, OfByte(3), floor)

	higher, err := bs.Higher(31)
	require.NoError(t, err)
	assert.True(t, higher.IsEmpty())
}

func TestByteSet_IteratorRemove(t *testing.T) {
	bs := NewByteSet(mustOf(t, 1, 5, 10, 20))

	it := bs.Iterator()
	err := it.Remove()
	assert.ErrorIs(t, err, ErrIllegalState)

	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		if e == 5 || e == 20 {
			require.NoError(t, it.Remove())
		}
	}
	// Double remove of the same element.
	assert.ErrorIs(t, it.Remove(), ErrIllegalState)

	assert.Equal(t, []uint8{1, 10}, bs.ToArray())
}

func TestByteSet_EqualityAndHash(t *testing.T) {
	a := NewByteSet(mustOf(t, 2, 4, 6))
	b := NewByteSet(mustOf(t, 2, 4, 6))
	c := NewByteSet(mustOf(t, 2, 4))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.Equal(t, 12, a.HashCode()) // sum of element hashes

	assert.True(t, a.EqualMap(map[uint8]struct{}{2: {}, 4: {}, 6: {}}))
	assert.False(t, a.EqualMap(map[uint8]struct{}{2: {}, 4: {}}))
	assert.False(t, a.EqualMap(map[uint8]struct{}{2: {}, 4: {}, 7: {}}))
}

func TestByteSet_Clone(t *testing.T) {
	a := NewByteSet(mustOf(t, 3))
	b := a.Clone()

	_, err := b.Add(9)
	require.NoError(t, err)

	assert.Equal(t, []uint8{3}, a.ToArray())
	assert.Equal(t, []uint8{3, 9}, b.ToArray())
}

func TestRangeView(t *testing.T) {
	bs := NewByteSet(mustOf(t, 1, 5, 10, 20))

	view, err := bs.SubSet(5, 20)
	require.NoError(t, err)
	assert.Equal(t, []uint8{5, 10}, view.ToArray())
	assert.Equal(t, 2, view.Len())
	assert.True(t, view.Contains(5))
	assert.False(t, view.Contains(20))
	assert.False(t, view.Contains(1))

	// Mutations delegate to the parent.
	changed, err := view.Add(7)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, bs.Contains(7))

	changed, err = view.Remove(5)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, bs.Contains(5))

	// The view reflects parent mutations, not a cached copy.
	_, err = bs.Add(12)
	require.NoError(t, err)
	assert.Equal(t, []uint8{7, 10, 12}, view.ToArray())

	// Elements outside the range are rejected.
	_, err = view.Add(20)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = view.Remove(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRangeView_Bounds(t *testing.T) {
	bs := NewByteSet(mustOf(t, 0, 15, 31))

	_, err := bs.SubSet(5, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)

	head, err := bs.HeadSet(16)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 15}, head.ToArray())

	tail, err := bs.TailSet(15)
	require.NoError(t, err)
	assert.Equal(t, []uint8{15, 31}, tail.ToArray())
}

func TestRangeView_IteratorRemove(t *testing.T) {
	bs := NewByteSet(mustOf(t, 1, 5, 10, 20))

	view, err := bs.SubSet(5, 20)
	require.NoError(t, err)

	it := view.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		if e == 10 {
			require.NoError(t, it.Remove())
		}
	}

	assert.Equal(t, []uint8{1, 5, 20}, bs.ToArray())
}
