package slotfinder

import (
	"context"
	"fmt"
	"sync"
)

// fakeGateway is an in-memory chain fixture: a current slot, a block
// time per slot, optional per-slot errors, and call counters.
type fakeGateway struct {
	mu sync.Mutex

	current    uint64
	currentErr error
	times      map[uint64]int64
	errs       map[uint64]error
	block      *BlockMetadata
	blockErr   error

	calls int
}

func newLinearChain(lastSlot uint64, baseTime int64) *fakeGateway {
	times := make(map[uint64]int64, lastSlot+1)
	for slot := uint64(0); slot <= lastSlot; slot++ {
		times[slot] = baseTime + int64(slot)
	}
	return &fakeGateway{current: lastSlot, times: times}
}

func (g *fakeGateway) CurrentSlot(ctx context.Context) (uint64, error) {
	g.count()
	if g.currentErr != nil {
		return 0, g.currentErr
	}
	return g.current, nil
}

func (g *fakeGateway) BlockTime(ctx context.Context, slot uint64) (BlockTime, error) {
	g.count()
	if err, ok := g.errs[slot]; ok {
		return BlockTime{}, err
	}
	if t, ok := g.times[slot]; ok {
		return NewBlockTime(t), nil
	}
	return BlockTime{}, nil
}

func (g *fakeGateway) BlockInfo(ctx context.Context, slot uint64) (*BlockMetadata, error) {
	g.count()
	if g.blockErr != nil {
		return nil, g.blockErr
	}
	if g.block != nil {
		return g.block, nil
	}
	t, ok := g.times[slot]
	if !ok {
		return nil, fmt.Errorf("slot %d has no block", slot)
	}
	return &BlockMetadata{
		Blockhash:  fmt.Sprintf("hash-%d", slot),
		ParentSlot: slot - 1,
		BlockTime:  &t,
	}, nil
}

func (g *fakeGateway) count() {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// quiet returns a Config that disables pacing and uses the fixture as
// the upstream.
func quiet(gw Gateway) Config {
	return Config{
		Gateway:     gw,
		SearchDelay: -1,
		ScanDelay:   -1,
	}
}

func newQuietResolver(gw Gateway) *Resolver {
	return NewResolver(gw, quiet(gw))
}
