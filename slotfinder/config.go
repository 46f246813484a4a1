package slotfinder

import (
	"fmt"
	"time"
)

// Defaults for Config fields left at their zero value.
const (
	DefaultEndpoint               = "https://mainnet.helius-rpc.com"
	DefaultConnectTimeout         = 5 * time.Second
	DefaultTotalTimeout           = 10 * time.Second
	DefaultNeighborProbeWidth     = 20
	DefaultHighestMatchScanBudget = 100

	// Pacing between sequential upstream probes. Politeness toward
	// rate-limited endpoints, not a correctness concern.
	DefaultSearchDelay = 10 * time.Millisecond
	DefaultScanDelay   = 5 * time.Millisecond
)

// Config configures one resolution call.
type Config struct {
	// Endpoint is the JSON-RPC HTTPS endpoint.
	Endpoint string
	// APIKey, if non-empty, is sent as the x-api-key header.
	APIKey string

	// ConnectTimeout bounds connection establishment; TotalTimeout
	// bounds each whole RPC call.
	ConnectTimeout time.Duration
	TotalTimeout   time.Duration

	// NeighborProbeWidth is the maximum offset probed around a slot
	// with no block time (2×width concurrent lookups).
	NeighborProbeWidth int
	// HighestMatchScanBudget caps the forward scan for the highest
	// slot sharing an exact-match timestamp.
	HighestMatchScanBudget int

	// SearchDelay separates binary-search iterations; ScanDelay
	// separates sequential scan/rewind probes. A negative value
	// disables pacing.
	SearchDelay time.Duration
	ScanDelay   time.Duration

	// Gateway, if set, overrides Endpoint/APIKey and is used as the
	// upstream directly. Tests use this to substitute chain fixtures.
	Gateway Gateway

	// Now, if set, overrides the wall clock used for the
	// future-target check.
	Now func() time.Time
}

func (c *Config) setDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.TotalTimeout == 0 {
		c.TotalTimeout = DefaultTotalTimeout
	}
	if c.NeighborProbeWidth == 0 {
		c.NeighborProbeWidth = DefaultNeighborProbeWidth
	}
	if c.HighestMatchScanBudget == 0 {
		c.HighestMatchScanBudget = DefaultHighestMatchScanBudget
	}
	if c.SearchDelay == 0 {
		c.SearchDelay = DefaultSearchDelay
	}
	if c.ScanDelay == 0 {
		c.ScanDelay = DefaultScanDelay
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

func (c *Config) validate() error {
	if c.Gateway == nil && c.Endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	if c.NeighborProbeWidth < 0 {
		return fmt.Errorf("neighbor probe width must not be negative, got %d", c.NeighborProbeWidth)
	}
	if c.HighestMatchScanBudget < 0 {
		return fmt.Errorf("highest-match scan budget must not be negative, got %d", c.HighestMatchScanBudget)
	}
	return nil
}
