package slotfinder

import "context"

// Gateway is the upstream RPC surface the search depends on. The
// production implementation is a JSON-RPC 2.0 client over HTTPS (see
// NewRPCGateway); tests substitute in-memory chain fixtures.
type Gateway interface {
	// CurrentSlot returns the latest finalized slot.
	CurrentSlot(ctx context.Context) (uint64, error)

	// BlockTime returns the block time of the given slot. A slot that
	// was skipped or is unavailable upstream yields an absent
	// BlockTime and a nil error; errors are transport or protocol
	// failures only.
	BlockTime(ctx context.Context, slot uint64) (BlockTime, error)

	// BlockInfo returns metadata for the block produced at the given
	// slot. It fails if the slot has no block.
	BlockInfo(ctx context.Context, slot uint64) (*BlockMetadata, error)
}

// BlockMetadata is the metadata of a finalized block, fetched once for
// the finally-resolved slot. Field tags match the Solana getBlock
// response; blockTime and blockHeight are nullable on the wire.
type BlockMetadata struct {
	Blockhash   string  `json:"blockhash"`
	ParentSlot  uint64  `json:"parentSlot"`
	BlockTime   *int64  `json:"blockTime"`
	BlockHeight *uint64 `json:"blockHeight"`
}
