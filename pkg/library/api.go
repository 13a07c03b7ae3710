// Package library answers what the local media library already owns.
package library

import (
	"context"

	"github.com/wversluys/fetcharr/pkg/media"
)

// Library is the owned-state source consulted once per catalog entry per
// run. Implementations return empty results, not errors, when the backing
// store is unavailable; unknown ownership means "owns nothing".
type Library interface {
	// OwnedEpisodes returns the episodes of the series identified by the
	// IMDb id that are already present.
	OwnedEpisodes(ctx context.Context, imdbID string) (media.EpisodeSet, error)
	// OwnedFilm reports whether the film is already present.
	OwnedFilm(ctx context.Context, imdbID, title string, year int) (bool, error)
}

// Disabled is the Library used when no library database is configured; it
// owns nothing, so everything desired is acquired.
type Disabled struct{}

func (Disabled) OwnedEpisodes(ctx context.Context, imdbID string) (media.EpisodeSet, error) {
	return media.NewEpisodeSet(), nil
}

func (Disabled) OwnedFilm(ctx context.Context, imdbID, title string, year int) (bool, error) {
	return false, nil
}
