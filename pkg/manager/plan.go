package manager

import (
	"time"

	"github.com/wversluys/fetcharr/pkg/catalog"
	"github.com/wversluys/fetcharr/pkg/imdb"
	"github.com/wversluys/fetcharr/pkg/media"
)

// WorkUnit is a single acquisition to attempt: one film, one episode, or a
// whole season.
type WorkUnit struct {
	Film       bool
	Season     int
	SeasonPack bool
	// Episodes is every episode the unit covers, one entry for a single
	// episode unit.
	Episodes []media.EpisodeKey
}

// Outcome of a resolved work unit.
type Outcome string

const (
	OutcomeGrabbed  Outcome = "grabbed"
	OutcomeNotFound Outcome = "not-found"
	OutcomeFailed   Outcome = "failed"
)

// UnitResult reports what happened to one work unit.
type UnitResult struct {
	Unit    WorkUnit
	Outcome Outcome
	// Release is the name of the grabbed release, empty otherwise.
	Release string
	Err     error
}

// EntryResult reports what happened to one catalog entry. Err is set only
// when the entry could not be processed at all.
type EntryResult struct {
	Item  catalog.MediaItem
	Units []UnitResult
	Err   error
}

// desiredEpisodes filters the known episodes down to the ones worth
// acquiring: aired at least a day ago and admitted by the item's season
// filter.
func desiredEpisodes(now time.Time, episodes []imdb.Episode, item catalog.MediaItem) media.EpisodeSet {
	desired := media.NewEpisodeSet()
	today := now.Truncate(24 * time.Hour)

	for _, e := range episodes {
		if e.Aired == nil || !e.Aired.Before(today) {
			continue
		}
		if !item.SeasonWanted(e.Key.Season) {
			continue
		}
		desired.Add(e.Key)
	}

	return desired
}

// planSeries turns the gap between desired and owned into work units. A
// season with no owned episodes at all becomes a single season pack unit;
// any other season yields one unit per missing episode.
func planSeries(owned, desired media.EpisodeSet) []WorkUnit {
	missing := desired.Diff(owned)

	var units []WorkUnit
	for _, season := range missing.Seasons() {
		episodes := missing.SeasonEpisodes(season)

		if !owned.HasSeason(season) {
			units = append(units, WorkUnit{Season: season, SeasonPack: true, Episodes: episodes})
			continue
		}

		for _, key := range episodes {
			units = append(units, WorkUnit{Season: season, Episodes: []media.EpisodeKey{key}})
		}
	}

	return units
}
