package slotfinder

import (
	"context"
	"fmt"
)

// Result is the outcome of one resolution: the resolved slot and the
// metadata of its block.
type Result struct {
	Slot  uint64         `json:"slot"`
	Block *BlockMetadata `json:"block"`
}

// FindSlotAtOrBefore resolves target (epoch seconds) to the highest
// slot whose finalized block time is at or before it, and fetches the
// metadata of that slot's block.
//
// It fails with ErrTargetInFuture before any network call if target is
// later than the current wall-clock time, with an UpstreamError if the
// bootstrap current-slot call or the final block fetch fails, and with
// ErrNotFound if no usable slot exists.
func FindSlotAtOrBefore(ctx context.Context, target int64, cfg Config) (*Result, error) {
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if now := cfg.Now().Unix(); target > now {
		return nil, fmt.Errorf("%w: target %d is %d seconds ahead of now", ErrTargetInFuture, target, target-now)
	}

	gw := cfg.Gateway
	if gw == nil {
		gw = NewRPCGateway(cfg.Endpoint, cfg.APIKey, cfg.ConnectTimeout, cfg.TotalTimeout)
	}

	slot, err := NewResolver(gw, cfg).Resolve(ctx, target)
	if err != nil {
		return nil, err
	}

	block, err := gw.BlockInfo(ctx, slot)
	if err != nil {
		return nil, &UpstreamError{Method: "getBlock", Err: err}
	}
	return &Result{Slot: slot, Block: block}, nil
}
