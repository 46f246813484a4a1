package slotfinder

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the search exhausted its window without
	// locating any slot with a usable block time at or before the
	// target, or the backward walk reached slot 0.
	ErrNotFound = errors.New("no slot with a block time at or before the target was found")

	// ErrTargetInFuture means the target timestamp is later than the
	// current wall-clock time. It is surfaced before any network call.
	ErrTargetInFuture = errors.New("target timestamp is in the future")
)

// UpstreamError is a fatal upstream failure: the bootstrap getSlot
// call or the final getBlock fetch. Per-slot getBlockTime failures
// during the search are recovered locally and never surface as this.
type UpstreamError struct {
	Method string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Method, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
