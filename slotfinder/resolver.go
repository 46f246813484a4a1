package slotfinder

import (
	"context"
	"time"

	"k8s.io/klog/v2"
)

// Resolver runs the timestamp-ordered binary search over slot numbers.
// All state is local to one Resolve call; a Resolver is safe for
// concurrent use as long as its Gateway is.
//
// Precondition (not verified here): block times are non-decreasing
// with slot number.
type Resolver struct {
	gw          Gateway
	probeWidth  uint64
	scanBudget  int
	searchDelay time.Duration
	scanDelay   time.Duration
}

// NewResolver returns a Resolver over the given gateway, using the
// probe/scan/pacing settings from cfg (defaults applied).
func NewResolver(gw Gateway, cfg Config) *Resolver {
	cfg.setDefaults()
	return &Resolver{
		gw:          gw,
		probeWidth:  uint64(cfg.NeighborProbeWidth),
		scanBudget:  cfg.HighestMatchScanBudget,
		searchDelay: cfg.SearchDelay,
		scanDelay:   cfg.ScanDelay,
	}
}

// Resolve returns the highest slot whose block time is at or before
// target. It fails with an UpstreamError if the bootstrap current-slot
// call fails, and with ErrNotFound if the search exhausts its window
// without a usable candidate.
func (r *Resolver) Resolve(ctx context.Context, target int64) (uint64, error) {
	currentSlot, err := r.gw.CurrentSlot(ctx)
	if err != nil {
		return 0, &UpstreamError{Method: "getSlot", Err: err}
	}
	klog.V(1).Infof("current slot: %d; searching for block time <= %d", currentSlot, target)

	// The window is signed so that shrinking past slot 0 collapses it
	// instead of wrapping around.
	var low int64
	high := int64(currentSlot)
	var best *Candidate

	for low <= high {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		mid := low + (high-low)/2

		blockTime, err := r.gw.BlockTime(ctx, uint64(mid))
		switch {
		case err != nil:
			// A single failed probe never aborts the search; skip the
			// slot and keep moving forward.
			klog.Warningf("getBlockTime(%d) failed, skipping: %v", mid, err)
			low = mid + 1

		case blockTime.Present():
			t, _ := blockTime.Value()
			klog.V(2).Infof("slot %d has block time %d", mid, t)
			if t == target {
				return r.scanHighest(ctx, uint64(mid), target), nil
			}
			best = chooseBetter(best, newCandidate(uint64(mid), t, target), target)
			if t < target {
				low = mid + 1
			} else {
				high = mid - 1
			}

		default:
			klog.V(2).Infof("slot %d has no block time, probing neighbors", mid)
			found := r.probeNeighbors(ctx, uint64(mid), target)
			if found == nil {
				// The whole neighborhood is dark; assume the answer
				// lies further ahead.
				low = mid + 1
				continue
			}
			klog.V(2).Infof("neighbor slot %d has block time %d", found.Slot, found.Time)
			if found.Time == target {
				return r.scanHighest(ctx, found.Slot, target), nil
			}
			best = chooseBetter(best, found, target)
			// Narrow by mid, not by the found slot: the found slot can
			// sit just below mid, and narrowing by it would leave the
			// window unchanged forever.
			if found.Time < target {
				low = mid + 1
			} else {
				high = mid - 1
			}
		}

		r.pace(ctx, r.searchDelay)
	}

	if best == nil {
		return 0, ErrNotFound
	}

	if best.Time == target {
		return r.scanHighest(ctx, best.Slot, target), nil
	}
	if best.Diff > 0 {
		// The search converged strictly after the target; walk back to
		// the boundary.
		return r.rewind(ctx, best.Slot, target)
	}
	return best.Slot, nil
}

// pace sleeps for d, returning early if ctx is cancelled.
func (r *Resolver) pace(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
