// Package slotfinder resolves a point in time to a Solana slot: the
// highest slot whose finalized block time is at or before the target
// timestamp.
//
// The search is a timestamp-ordered binary search over slot numbers,
// hardened against skipped slots (slots with no block time), runs of
// consecutive slots sharing one timestamp, and transient per-slot
// upstream failures. It assumes block times are non-decreasing with
// slot number; that is an invariant of the data source, not something
// this package verifies.
package slotfinder

import "fmt"

// BlockTime is the optional block time of a slot. The zero value means
// the slot was skipped or its block time is unavailable, which is a
// normal outcome and distinct from a transport error.
type BlockTime struct {
	value   int64
	present bool
}

// NewBlockTime returns a present BlockTime.
func NewBlockTime(epochSeconds int64) BlockTime {
	return BlockTime{value: epochSeconds, present: true}
}

// Value returns the block time in epoch seconds, and whether it is present.
func (t BlockTime) Value() (int64, bool) {
	return t.value, t.present
}

// Present returns true if the slot has a block time.
func (t BlockTime) Present() bool {
	return t.present
}

func (t BlockTime) String() string {
	if !t.present {
		return "<none>"
	}
	return fmt.Sprintf("%d", t.value)
}

// Candidate is the best boundary-adjacent slot observed so far during
// a search: a slot, its block time, and the signed distance to the
// target (time − target).
type Candidate struct {
	Slot uint64
	Time int64
	Diff int64
}

func newCandidate(slot uint64, blockTime int64, target int64) *Candidate {
	return &Candidate{
		Slot: slot,
		Time: blockTime,
		Diff: blockTime - target,
	}
}
