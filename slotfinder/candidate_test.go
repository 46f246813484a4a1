package slotfinder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChooseBetter(t *testing.T) {
	const target = 1000
	cand := func(slot uint64, time int64) *Candidate {
		return newCandidate(slot, time, target)
	}

	t.Run("nil handling", func(t *testing.T) {
		require.Nil(t, chooseBetter(nil, nil, target))
		c := cand(5, 990)
		require.Equal(t, c, chooseBetter(nil, c, target))
		require.Equal(t, c, chooseBetter(c, nil, target))
	})

	t.Run("before beats after regardless of distance", func(t *testing.T) {
		before := cand(10, 900) // 100 below
		after := cand(20, 1001) // 1 above
		require.Equal(t, before, chooseBetter(after, before, target))
		require.Equal(t, before, chooseBetter(before, after, target))
	})

	t.Run("exact match counts as before", func(t *testing.T) {
		exact := cand(10, 1000)
		after := cand(20, 1001)
		require.Equal(t, exact, chooseBetter(after, exact, target))
	})

	t.Run("closest before wins", func(t *testing.T) {
		far := cand(10, 900)
		near := cand(12, 999)
		require.Equal(t, near, chooseBetter(far, near, target))
		require.Equal(t, near, chooseBetter(near, far, target))
	})

	t.Run("closest after wins while no before exists", func(t *testing.T) {
		far := cand(30, 1100)
		near := cand(25, 1001)
		require.Equal(t, near, chooseBetter(far, near, target))
		require.Equal(t, near, chooseBetter(near, far, target))
	})

	t.Run("equal distance prefers higher slot", func(t *testing.T) {
		lower := cand(40, 999)
		higher := cand(41, 999)
		require.Equal(t, higher, chooseBetter(lower, higher, target))
		require.Equal(t, higher, chooseBetter(higher, lower, target))

		lowerAfter := cand(50, 1002)
		higherAfter := cand(51, 1002)
		require.Equal(t, higherAfter, chooseBetter(lowerAfter, higherAfter, target))
		require.Equal(t, higherAfter, chooseBetter(higherAfter, lowerAfter, target))
	})
}

func TestBlockTimeOptional(t *testing.T) {
	var absent BlockTime
	require.False(t, absent.Present())
	_, ok := absent.Value()
	require.False(t, ok)
	require.Equal(t, "<none>", absent.String())

	present := NewBlockTime(0)
	require.True(t, present.Present())
	v, ok := present.Value()
	require.True(t, ok)
	require.Equal(t, int64(0), v)
}
