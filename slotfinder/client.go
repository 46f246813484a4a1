package slotfinder

import (
	"context"
	"fmt"
	"time"

	"github.com/ybbus/jsonrpc/v3"
)

// Solana long-term storage error codes for slots that were skipped or
// are missing from the ledger. These mean "no block", not "request
// failed" — the distinction is load-bearing for the search.
const (
	codeSlotSkipped           = -32007
	codeLongTermStorageMissed = -32009
)

func isBlockUnavailable(code int) bool {
	return code == codeSlotSkipped || code == codeLongTermStorageMissed
}

type rpcGateway struct {
	client jsonrpc.RPCClient
}

// NewRPCGateway returns a Gateway backed by a JSON-RPC 2.0 client over
// the given endpoint. If apiKey is non-empty it is sent as the
// x-api-key header on every request.
func NewRPCGateway(endpoint, apiKey string, connectTimeout, totalTimeout time.Duration) Gateway {
	opts := &jsonrpc.RPCClientOpts{
		HTTPClient: newHTTPClient(connectTimeout, totalTimeout),
	}
	if apiKey != "" {
		opts.CustomHeaders = map[string]string{
			"x-api-key": apiKey,
		}
	}
	return &rpcGateway{
		client: jsonrpc.NewClientWithOpts(endpoint, opts),
	}
}

func (g *rpcGateway) call(ctx context.Context, method string, params ...interface{}) (*jsonrpc.RPCResponse, error) {
	startedAt := time.Now()
	resp, err := g.client.Call(ctx, method, params...)
	took := time.Since(startedAt)

	metrics_rpcRequestsByMethod.WithLabelValues(method).Inc()
	metrics_rpcResponseTimeHistogram.WithLabelValues(method).Observe(took.Seconds())
	if err != nil {
		metrics_rpcMethodToSuccessOrFailure.WithLabelValues(method, "failure").Inc()
		return nil, err
	}
	metrics_rpcMethodToSuccessOrFailure.WithLabelValues(method, "success").Inc()
	return resp, nil
}

func (g *rpcGateway) CurrentSlot(ctx context.Context) (uint64, error) {
	resp, err := g.call(ctx, "getSlot", []interface{}{
		map[string]interface{}{"commitment": "finalized"},
	})
	if err != nil {
		return 0, fmt.Errorf("getSlot: %w", err)
	}
	if resp.Error != nil {
		return 0, fmt.Errorf("getSlot: %w", resp.Error)
	}
	slot, err := resp.GetInt()
	if err != nil {
		return 0, fmt.Errorf("getSlot: unexpected result: %w", err)
	}
	return uint64(slot), nil
}

func (g *rpcGateway) BlockTime(ctx context.Context, slot uint64) (BlockTime, error) {
	resp, err := g.call(ctx, "getBlockTime", []interface{}{slot})
	if err != nil {
		return BlockTime{}, fmt.Errorf("getBlockTime(%d): %w", slot, err)
	}
	if resp.Error != nil {
		if isBlockUnavailable(resp.Error.Code) {
			return BlockTime{}, nil
		}
		return BlockTime{}, fmt.Errorf("getBlockTime(%d): %w", slot, resp.Error)
	}
	if resp.Result == nil {
		return BlockTime{}, nil
	}
	blockTime, err := resp.GetInt()
	if err != nil {
		return BlockTime{}, fmt.Errorf("getBlockTime(%d): unexpected result: %w", slot, err)
	}
	return NewBlockTime(blockTime), nil
}

func (g *rpcGateway) BlockInfo(ctx context.Context, slot uint64) (*BlockMetadata, error) {
	resp, err := g.call(ctx, "getBlock", []interface{}{
		slot,
		map[string]interface{}{
			"encoding":                       "json",
			"transactionDetails":             "none",
			"rewards":                        false,
			"maxSupportedTransactionVersion": 0,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("getBlock(%d): %w", slot, err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("getBlock(%d): %w", slot, resp.Error)
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("getBlock(%d): slot has no block", slot)
	}
	block := new(BlockMetadata)
	if err := resp.GetObject(block); err != nil {
		return nil, fmt.Errorf("getBlock(%d): unexpected result: %w", slot, err)
	}
	return block, nil
}
