package slotfinder

// chooseBetter applies the tie-break policy to a newly observed timed
// slot:
//
//   - a candidate at or before the target beats any candidate after it;
//   - among candidates at or before the target, the smallest
//     target−time wins;
//   - among candidates after the target (only relevant while no
//     at-or-before candidate exists yet), the smallest time−target wins;
//   - at equal distance on the same side, the higher slot wins, so the
//     result does not depend on observation order.
func chooseBetter(current, candidate *Candidate, target int64) *Candidate {
	if candidate == nil {
		return current
	}
	if current == nil {
		return candidate
	}
	currentBefore := current.Time <= target
	candidateBefore := candidate.Time <= target
	switch {
	case candidateBefore && !currentBefore:
		return candidate
	case currentBefore && !candidateBefore:
		return current
	case candidateBefore:
		// Both at or before the target; closest (then highest) wins.
		if target-candidate.Time < target-current.Time {
			return candidate
		}
		if target-candidate.Time == target-current.Time && candidate.Slot > current.Slot {
			return candidate
		}
		return current
	default:
		// Both after the target.
		if candidate.Time-target < current.Time-target {
			return candidate
		}
		if candidate.Time-target == current.Time-target && candidate.Slot > current.Slot {
			return candidate
		}
		return current
	}
}
