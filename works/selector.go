package works

// A Selector chooses the canonical work summary from a work group. Sources are
// ranked aggregator > curator > first listed.
type Selector struct {
	// if true, the first summary in a group is always selected
	FirstOnly bool
	// name of a trusted curator source, preferred over other sources
	Curator string
	// name of an authoritative aggregator source, preferred over all others
	Aggregator string
}

// returns the canonical summary among the given candidates, or false if there
// are no candidates
func (s Selector) Select(candidates []WorkSummary) (WorkSummary, bool) {
	if len(candidates) == 0 {
		return WorkSummary{}, false
	}
	if len(candidates) == 1 || s.FirstOnly {
		return candidates[0], true
	}
	selected := candidates[0]
	for _, candidate := range candidates {
		if s.Aggregator != "" && candidate.Source == s.Aggregator {
			return candidate, true
		}
		// a later curator entry replaces an earlier one
		if s.Curator != "" && candidate.Source == s.Curator {
			selected = candidate
		}
	}
	return selected, true
}
