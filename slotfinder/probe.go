package slotfinder

import (
	"context"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// probeNeighbors fans out concurrent block-time lookups for the slots
// center±k, k=1..probeWidth (clamped to non-negative slots), and
// selects the best surviving candidate with the shared tie-break
// policy. Completion order is irrelevant. Returns nil if every probed
// slot is absent or erroring.
//
// This bounds the cost of a skipped-slot encounter to one parallel
// round-trip instead of unbounded sequential retries.
func (r *Resolver) probeNeighbors(ctx context.Context, center uint64, target int64) *Candidate {
	slots := make([]uint64, 0, 2*r.probeWidth)
	for k := uint64(1); k <= r.probeWidth; k++ {
		if center >= k {
			slots = append(slots, center-k)
		}
		slots = append(slots, center+k)
	}

	results := make(chan Candidate, len(slots))
	var wg errgroup.Group
	for _, slot := range slots {
		slot := slot
		wg.Go(func() error {
			blockTime, err := r.gw.BlockTime(ctx, slot)
			if err != nil {
				// Absent and erroring slots are equally uninformative
				// here; both are dropped from the surviving set.
				klog.V(2).Infof("probe getBlockTime(%d) failed: %v", slot, err)
				return nil
			}
			if t, ok := blockTime.Value(); ok {
				results <- *newCandidate(slot, t, target)
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var best *Candidate
	for res := range results {
		res := res
		best = chooseBetter(best, &res, target)
	}
	return best
}
