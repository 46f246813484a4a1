package slotfinder

import (
	"context"

	"k8s.io/klog/v2"
)

// scanHighest returns the highest slot sharing the exact target
// timestamp, scanning forward sequentially from start+1. Block times
// have one-second granularity, so several consecutive slots may share
// a value; the canonical answer is the highest of them.
//
// The scan stops at the first slot whose time exceeds the target
// (times are non-decreasing going forward), skips absent and erroring
// slots, and gives up after the scan budget regardless.
func (r *Resolver) scanHighest(ctx context.Context, start uint64, target int64) uint64 {
	highest := start
	slot := start + 1
	for scanned := 0; scanned < r.scanBudget; scanned++ {
		if ctx.Err() != nil {
			break
		}
		blockTime, err := r.gw.BlockTime(ctx, slot)
		if err == nil {
			if t, ok := blockTime.Value(); ok {
				if t == target {
					klog.V(2).Infof("slot %d shares block time %d", slot, target)
					highest = slot
				} else if t > target {
					break
				}
				// A time below the target should not appear in a
				// forward scan; skip it like an absent slot.
			}
		}
		slot++
		r.pace(ctx, r.scanDelay)
	}
	klog.V(1).Infof("highest slot with block time %d is %d", target, highest)
	return highest
}
