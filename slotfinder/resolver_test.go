package slotfinder

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// Slots 0..1000 with block time 1000+slot; target 1500 is an exact
// match at slot 500 with no duplicate above it.
func TestResolveExactMatch(t *testing.T) {
	gw := newLinearChain(1000, 1000)
	slot, err := newQuietResolver(gw).Resolve(context.Background(), 1500)
	require.NoError(t, err)
	require.Equal(t, uint64(500), slot)
}

// Slots 700..705 all report time 2000; the canonical answer for target
// 2000 is the highest duplicate.
func TestResolveDuplicateTimestamps(t *testing.T) {
	gw := newLinearChain(1000, 1000)
	for slot := uint64(700); slot <= 705; slot++ {
		gw.times[slot] = 2000
	}
	// keep times non-decreasing above the duplicate run
	for slot := uint64(706); slot <= 1000; slot++ {
		gw.times[slot] = 2000 + int64(slot-705)
	}
	slot, err := newQuietResolver(gw).Resolve(context.Background(), 2000)
	require.NoError(t, err)
	require.Equal(t, uint64(705), slot)
}

// Slot 500 is absent; the neighbor probe finds a timed slot nearby and
// the search still converges.
func TestResolveSkippedMidpoint(t *testing.T) {
	gw := newLinearChain(1000, 1000)
	delete(gw.times, 500)
	slot, err := newQuietResolver(gw).Resolve(context.Background(), 1500)
	require.NoError(t, err)
	// 1500 has no slot anymore; the best is the closest slot before it.
	require.Equal(t, uint64(499), slot)
	got, err := gw.BlockTime(context.Background(), slot)
	require.NoError(t, err)
	tm, ok := got.Value()
	require.True(t, ok)
	require.LessOrEqual(t, tm, int64(1500))
}

// A run of consecutive absent slots no wider than the probe width does
// not prevent convergence.
func TestResolveGapTolerance(t *testing.T) {
	gw := newLinearChain(1000, 1000)
	for slot := uint64(481); slot <= 500; slot++ {
		delete(gw.times, slot)
	}
	slot, err := newQuietResolver(gw).Resolve(context.Background(), 1500)
	require.NoError(t, err)
	require.Equal(t, uint64(480), slot)
}

// Target below the genesis block time: the backward walk runs out of
// slots and the search reports NotFound.
func TestResolveTargetBeforeGenesis(t *testing.T) {
	gw := newLinearChain(1000, 1000)
	_, err := newQuietResolver(gw).Resolve(context.Background(), 500)
	require.ErrorIs(t, err, ErrNotFound)
}

// No target slot exists with the exact time; the answer is the closest
// slot at or before the target.
func TestResolveBetweenTimestamps(t *testing.T) {
	gw := &fakeGateway{
		current: 10,
		times: map[uint64]int64{
			0: 100, 1: 110, 2: 120, 3: 130, 4: 140, 5: 150,
			6: 160, 7: 170, 8: 180, 9: 190, 10: 200,
		},
	}
	slot, err := newQuietResolver(gw).Resolve(context.Background(), 135)
	require.NoError(t, err)
	require.Equal(t, uint64(3), slot)
}

// A transport error on a single midpoint probe is swallowed and the
// search still converges.
func TestResolveTransientSlotError(t *testing.T) {
	gw := newLinearChain(1000, 1000)
	gw.errs = map[uint64]error{500: fmt.Errorf("connection reset")}
	slot, err := newQuietResolver(gw).Resolve(context.Background(), 1600)
	require.NoError(t, err)
	require.Equal(t, uint64(600), slot)
}

// A failing bootstrap current-slot call is fatal and surfaces as an
// UpstreamError.
func TestResolveBootstrapFailure(t *testing.T) {
	gw := &fakeGateway{currentErr: fmt.Errorf("503 service unavailable")}
	_, err := newQuietResolver(gw).Resolve(context.Background(), 1500)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, "getSlot", upstream.Method)
}

// An entirely dark chain (every slot absent) exhausts the window and
// reports NotFound.
func TestResolveAllSlotsAbsent(t *testing.T) {
	gw := &fakeGateway{current: 100, times: map[uint64]int64{}}
	_, err := newQuietResolver(gw).Resolve(context.Background(), 1500)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolveCancelled(t *testing.T) {
	gw := newLinearChain(1000, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newQuietResolver(gw).Resolve(ctx, 1500)
	require.ErrorIs(t, err, context.Canceled)
}

// Resolving the same target twice against an unchanged chain yields
// the same slot.
func TestResolveIdempotent(t *testing.T) {
	gw := newLinearChain(1000, 1000)
	delete(gw.times, 500)
	delete(gw.times, 501)
	r := newQuietResolver(gw)
	first, err := r.Resolve(context.Background(), 1502)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), 1502)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// For increasing targets the resolved slot never decreases, and its
// block time never exceeds the target.
func TestResolveMonotonic(t *testing.T) {
	gw := newLinearChain(1000, 1000)
	// sprinkle gaps and duplicate runs
	for slot := uint64(300); slot <= 310; slot++ {
		delete(gw.times, slot)
	}
	for slot := uint64(600); slot <= 603; slot++ {
		gw.times[slot] = 1600
	}
	r := newQuietResolver(gw)

	var prev uint64
	for target := int64(1100); target <= 1900; target += 37 {
		slot, err := r.Resolve(context.Background(), target)
		require.NoError(t, err, "target %d", target)
		require.GreaterOrEqual(t, slot, prev, "target %d", target)
		prev = slot

		blockTime, err := gw.BlockTime(context.Background(), slot)
		require.NoError(t, err)
		tm, ok := blockTime.Value()
		require.True(t, ok, "resolved slot %d must have a block time", slot)
		require.LessOrEqual(t, tm, target, "target %d", target)
	}
}

// If a slot matches the target exactly, the resolved slot is the
// highest one sharing that time, whichever path found the match.
func TestResolveAlwaysCanonicalizesExactMatches(t *testing.T) {
	for _, run := range []uint64{1, 2, 5} {
		gw := newLinearChain(1000, 1000)
		for slot := uint64(500); slot < 500+run; slot++ {
			gw.times[slot] = 1500
		}
		for slot := 500 + run; slot <= 1000; slot++ {
			gw.times[slot] = 1500 + int64(slot-(500+run-1))
		}
		slot, err := newQuietResolver(gw).Resolve(context.Background(), 1500)
		require.NoError(t, err)
		require.Equal(t, 500+run-1, slot, "duplicate run of %d", run)
	}
}

func TestResolveErrorsNeverPanicOnEmptyChain(t *testing.T) {
	gw := &fakeGateway{current: 0, times: map[uint64]int64{}}
	_, err := newQuietResolver(gw).Resolve(context.Background(), 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))
}
