package release

import (
	"errors"

	"github.com/wversluys/fetcharr/pkg/quality"
)

// ErrNoCandidates is returned when Select is called with an empty candidate
// list. Callers must check non-emptiness first; reaching this is a
// programming error, not a runtime fault.
var ErrNoCandidates = errors.New("no candidates to select from")

// Select picks the best candidate for the given tier order. Tiers are
// consulted strictly in order and the first tier with at least one match
// wins, even if a later tier would also match. Within the winning tier the
// most-seeded candidate is chosen; ties go to the first-encountered
// candidate, so input order makes the pick deterministic. A policy without a
// catch-all tier falls back to the globally most-seeded candidate.
func Select(candidates []Candidate, tiers []quality.Tier) (Candidate, quality.Tier, error) {
	if len(candidates) == 0 {
		return Candidate{}, nil, ErrNoCandidates
	}

	for _, tier := range tiers {
		var best *Candidate
		for i := range candidates {
			if !tier.Matches(candidates[i].Name) {
				continue
			}
			if best == nil || candidates[i].Seeders > best.Seeders {
				best = &candidates[i]
			}
		}
		if best != nil {
			return *best, tier, nil
		}
	}

	// malformed policy without a terminal catch-all tier
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Seeders > best.Seeders {
			best = c
		}
	}
	return best, nil, nil
}
