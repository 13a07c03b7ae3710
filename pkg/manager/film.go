package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/wversluys/fetcharr/pkg/catalog"
	"github.com/wversluys/fetcharr/pkg/logger"
	"github.com/wversluys/fetcharr/pkg/quality"
	"github.com/wversluys/fetcharr/pkg/release"
	"github.com/wversluys/fetcharr/pkg/storage"
)

// acquireFilm grabs a film entry unless the library already has it or a
// grab for it is still on its way down.
func (m MediaManager) acquireFilm(ctx context.Context, item catalog.MediaItem) EntryResult {
	log := logger.FromCtx(ctx, "title", item.Title)
	result := EntryResult{Item: item}

	owned, err := m.library.OwnedFilm(ctx, item.ImdbID, item.Title, item.Year)
	if err != nil {
		log.Warnw("failed to read library, assuming nothing owned", "error", err)
		owned = false
	}

	grabs, err := m.storage.ListPendingGrabs(ctx, item.ImdbID)
	if err != nil {
		log.Warnw("failed to list pending grabs", "error", err)
		grabs = nil
	}

	if owned {
		for _, grab := range grabs {
			if err := m.storage.UpdateGrabState(ctx, int64(grab.ID), storage.GrabStateCompleted); err != nil {
				log.Warnw("failed to complete grab", "grab", grab.ID, "error", err)
			}
		}
		return result
	}

	if len(grabs) > 0 {
		log.Debugw("film already grabbed, waiting for it to arrive")
		return result
	}

	result.Units = append(result.Units, m.resolveFilmUnit(ctx, item))
	return result
}

func (m MediaManager) resolveFilmUnit(ctx context.Context, item catalog.MediaItem) UnitResult {
	log := logger.FromCtx(ctx, "title", item.Title)
	res := UnitResult{Unit: WorkUnit{Film: true}}

	query := item.Title
	if item.Year > 0 {
		query = fmt.Sprintf("%s %d", item.Title, item.Year)
	}

	candidates, err := m.searcher.Search(ctx, query)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = fmt.Errorf("search failed: %w", err)
		return res
	}

	matcher := quality.NewTier(query)
	matched := make([]release.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if matcher.Matches(c.Name) {
			matched = append(matched, c)
		}
	}

	chosen, tier, err := release.Select(matched, m.config.Tiers)
	if err != nil {
		if errors.Is(err, release.ErrNoCandidates) {
			log.Infow("nothing found", "query", query)
			res.Outcome = OutcomeNotFound
			return res
		}
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	if err := m.submit(ctx, item, chosen); err != nil {
		res.Outcome = OutcomeFailed
		res.Err = fmt.Errorf("failed to add download: %w", err)
		return res
	}

	m.recordGrab(ctx, item, res.Unit, chosen)

	log.Infow("grabbed release", "release", chosen.Name, "tier", tier.String(), "seeders", chosen.Seeders)
	res.Outcome = OutcomeGrabbed
	res.Release = chosen.Name
	return res
}
