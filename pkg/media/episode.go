// Package media holds the value types shared by the library, metadata, and
// manager packages.
package media

import (
	"cmp"
	"fmt"
	"slices"
)

// EpisodeKey identifies one episode of a series.
type EpisodeKey struct {
	Season  int
	Episode int
}

func (k EpisodeKey) String() string {
	return fmt.Sprintf("S%02dE%02d", k.Season, k.Episode)
}

// Compare orders keys by (season, episode).
func (k EpisodeKey) Compare(other EpisodeKey) int {
	if c := cmp.Compare(k.Season, other.Season); c != 0 {
		return c
	}
	return cmp.Compare(k.Episode, other.Episode)
}

// EpisodeSet is an unordered set of episode keys.
type EpisodeSet map[EpisodeKey]struct{}

func NewEpisodeSet(keys ...EpisodeKey) EpisodeSet {
	s := make(EpisodeSet, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s EpisodeSet) Add(k EpisodeKey) {
	s[k] = struct{}{}
}

func (s EpisodeSet) Contains(k EpisodeKey) bool {
	_, ok := s[k]
	return ok
}

// Diff returns the keys present in s but not in other.
func (s EpisodeSet) Diff(other EpisodeSet) EpisodeSet {
	out := make(EpisodeSet)
	for k := range s {
		if !other.Contains(k) {
			out.Add(k)
		}
	}
	return out
}

// Union returns a new set with the keys of both sets.
func (s EpisodeSet) Union(other EpisodeSet) EpisodeSet {
	out := make(EpisodeSet, len(s)+len(other))
	for k := range s {
		out.Add(k)
	}
	for k := range other {
		out.Add(k)
	}
	return out
}

// HasSeason reports whether any key of the given season is present.
func (s EpisodeSet) HasSeason(season int) bool {
	for k := range s {
		if k.Season == season {
			return true
		}
	}
	return false
}

// SeasonEpisodes returns the keys of the given season in ascending order.
func (s EpisodeSet) SeasonEpisodes(season int) []EpisodeKey {
	var keys []EpisodeKey
	for k := range s {
		if k.Season == season {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, EpisodeKey.Compare)
	return keys
}

// Seasons returns the distinct seasons present, ascending.
func (s EpisodeSet) Seasons() []int {
	seen := make(map[int]struct{})
	var seasons []int
	for k := range s {
		if _, ok := seen[k.Season]; ok {
			continue
		}
		seen[k.Season] = struct{}{}
		seasons = append(seasons, k.Season)
	}
	slices.Sort(seasons)
	return seasons
}

// Sorted returns every key in ascending (season, episode) order. Consumers
// iterate through this for deterministic logs and plans.
func (s EpisodeSet) Sorted() []EpisodeKey {
	keys := make([]EpisodeKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, EpisodeKey.Compare)
	return keys
}
