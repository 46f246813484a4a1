package slotfinder

import (
	"context"

	"k8s.io/klog/v2"
)

// rewind walks backward one slot at a time from start (exclusive),
// skipping absent and erroring slots, until it finds a slot whose time
// exactly equals the target (canonicalized via scanHighest) or is
// strictly below it. It fails with ErrNotFound when slot 0 has been
// passed without either condition holding.
func (r *Resolver) rewind(ctx context.Context, start uint64, target int64) (uint64, error) {
	klog.V(1).Infof("slot %d is after the target, walking backward", start)
	for slot := start; slot > 0; {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		slot--
		blockTime, err := r.gw.BlockTime(ctx, slot)
		if err != nil {
			klog.V(2).Infof("rewind getBlockTime(%d) failed, skipping: %v", slot, err)
			continue
		}
		if t, ok := blockTime.Value(); ok {
			if t == target {
				return r.scanHighest(ctx, slot, target), nil
			}
			if t < target {
				return slot, nil
			}
		}
		r.pace(ctx, r.scanDelay)
	}
	return 0, ErrNotFound
}
