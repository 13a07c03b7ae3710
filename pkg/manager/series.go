package manager

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wversluys/fetcharr/pkg/catalog"
	"github.com/wversluys/fetcharr/pkg/download"
	"github.com/wversluys/fetcharr/pkg/logger"
	"github.com/wversluys/fetcharr/pkg/media"
	"github.com/wversluys/fetcharr/pkg/quality"
	"github.com/wversluys/fetcharr/pkg/release"
	"github.com/wversluys/fetcharr/pkg/storage"
	"github.com/wversluys/fetcharr/pkg/storage/sqlite/schema/gen/model"
)

// acquireSeries brings one series entry up to date. Episode metadata is
// required; an unknown library state degrades to owning nothing.
func (m MediaManager) acquireSeries(ctx context.Context, item catalog.MediaItem) EntryResult {
	log := logger.FromCtx(ctx, "title", item.Title)
	result := EntryResult{Item: item}

	episodes, err := m.metadata.AllEpisodes(ctx, item.ImdbID)
	if err != nil {
		result.Err = fmt.Errorf("failed to list episodes: %w", err)
		return result
	}

	owned, err := m.library.OwnedEpisodes(ctx, item.ImdbID)
	if err != nil {
		log.Warnw("failed to read library, assuming nothing owned", "error", err)
		owned = media.NewEpisodeSet()
	}

	desired := desiredEpisodes(m.now(), episodes, item)
	owned = m.settlePendingGrabs(ctx, item.ImdbID, owned, desired)

	for _, unit := range planSeries(owned, desired) {
		res := m.resolveSeriesUnit(ctx, item, unit)
		result.Units = append(result.Units, res)

		// a season pack that can't be had is retried episode by episode
		if unit.SeasonPack && res.Outcome != OutcomeGrabbed {
			log.Infow("season pack unavailable, falling back to episodes", "season", unit.Season)
			for _, key := range unit.Episodes {
				single := WorkUnit{Season: unit.Season, Episodes: []media.EpisodeKey{key}}
				result.Units = append(result.Units, m.resolveSeriesUnit(ctx, item, single))
			}
		}
	}

	return result
}

// resolveSeriesUnit searches for one unit and grabs the best release.
func (m MediaManager) resolveSeriesUnit(ctx context.Context, item catalog.MediaItem, unit WorkUnit) UnitResult {
	log := logger.FromCtx(ctx, "title", item.Title)
	res := UnitResult{Unit: unit}

	var query string
	if unit.SeasonPack {
		query = fmt.Sprintf("%s season %d", item.Title, unit.Season)
	} else {
		query = fmt.Sprintf("%s %s", item.Title, strings.ToLower(unit.Episodes[0].String()))
	}

	candidates, err := m.searcher.Search(ctx, query)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = fmt.Errorf("search failed: %w", err)
		return res
	}

	// compact sNN pack names don't carry the query's "season" token, so
	// pack candidates prefilter on the title alone; IsSeasonPack checks
	// the season marker
	matcher := quality.NewTier(query)
	if unit.SeasonPack {
		matcher = quality.NewTier(item.Title)
	}

	matched := make([]release.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !matcher.Matches(c.Name) {
			continue
		}
		if unit.SeasonPack && !release.IsSeasonPack(item.Title, unit.Season, c, len(unit.Episodes)) {
			continue
		}
		matched = append(matched, c)
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

	m.recordGrab(ctx, item, unit, chosen)

	log.Infow("grabbed release", "release", chosen.Name, "tier", tier.String(), "seeders", chosen.Seeders)
	res.Outcome = OutcomeGrabbed
	res.Release = chosen.Name
	return res
}

// submit hands a chosen release to the download client.
func (m MediaManager) submit(ctx context.Context, item catalog.MediaItem, chosen release.Candidate) error {
	return m.downloads.Add(ctx, download.AddRequest{
		MagnetURI: chosen.MagnetURI(),
		SavePath:  filepath.Join(m.config.SavePath, item.Category()),
		Category:  item.Category(),
	})
}

// recordGrab writes the grab to the ledger. A ledger failure doesn't undo
// the grab, it only risks a duplicate on the next run.
func (m MediaManager) recordGrab(ctx context.Context, item catalog.MediaItem, unit WorkUnit, chosen release.Candidate) {
	log := logger.FromCtx(ctx, "title", item.Title)

	grab := model.Grab{
		ImdbID:      item.ImdbID,
		Title:       item.Title,
		SeasonPack:  unit.SeasonPack,
		ReleaseName: chosen.Name,
		InfoHash:    chosen.ContentID,
	}
	if !unit.Film {
		season := int32(unit.Season)
		grab.Season = &season
	}
	if !unit.Film && !unit.SeasonPack {
		episode := int32(unit.Episodes[0].Episode)
		grab.Episode = &episode
	}

	if _, err := m.storage.CreateGrab(ctx, grab); err != nil {
		log.Warnw("failed to record grab", "release", chosen.Name, "error", err)
	}
}

// settlePendingGrabs reconciles the ledger with the library: grabs whose
// episodes have all arrived are completed, the rest count as owned so they
// aren't grabbed twice.
func (m MediaManager) settlePendingGrabs(ctx context.Context, imdbID string, owned, desired media.EpisodeSet) media.EpisodeSet {
	log := logger.FromCtx(ctx)

	grabs, err := m.storage.ListPendingGrabs(ctx, imdbID)
	if err != nil {
		log.Warnw("failed to list pending grabs", "error", err)
		return owned
	}

	pending := media.NewEpisodeSet()
	for _, grab := range grabs {
		keys := grabEpisodes(grab, desired)
		if len(keys) == 0 {
			continue
		}

		arrived := true
		for _, key := range keys {
			if !owned.Contains(key) {
				arrived = false
				break
			}
		}

		if arrived {
			if err := m.storage.UpdateGrabState(ctx, int64(grab.ID), storage.GrabStateCompleted); err != nil {
				log.Warnw("failed to complete grab", "grab", grab.ID, "error", err)
			}
			continue
		}

		for _, key := range keys {
			pending.Add(key)
		}
	}

	return owned.Union(pending)
}

// grabEpisodes expands a ledger row to the episodes it covers. A season
// pack covers every desired episode of its season.
func grabEpisodes(grab *model.Grab, desired media.EpisodeSet) []media.EpisodeKey {
	if grab.Season == nil {
		return nil
	}
	if grab.SeasonPack {
		return desired.SeasonEpisodes(int(*grab.Season))
	}
	if grab.Episode == nil {
		return nil
	}
	return []media.EpisodeKey{{Season: int(*grab.Season), Episode: int(*grab.Episode)}}
}
