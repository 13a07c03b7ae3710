// Package kodi reads owned media out of a Kodi video database.
package kodi

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"

	"github.com/wversluys/fetcharr/pkg/library"
	"github.com/wversluys/fetcharr/pkg/library/kodi/schema/gen/model"
	"github.com/wversluys/fetcharr/pkg/library/kodi/schema/gen/table"
	"github.com/wversluys/fetcharr/pkg/logger"
	"github.com/wversluys/fetcharr/pkg/media"
)

// Kodi stores the episode guide for a show in tvshow.c10. Depending on the
// scraper it is either a JSON object or that object wrapped in an xml tag.
var tagRegex = regexp.MustCompile(`<[^>]*>`)

type Kodi struct {
	db *sql.DB
}

// New opens the Kodi video database at the given path. The database is only
// ever read from.
func New(filePath string) (library.Library, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	return Kodi{
		db: db,
	}, nil
}

// OwnedEpisodes returns the episodes Kodi knows about for the show with the
// given IMDb id. A show that isn't in the database owns nothing.
func (k Kodi) OwnedEpisodes(ctx context.Context, imdbID string) (media.EpisodeSet, error) {
	log := logger.FromCtx(ctx)

	owned := media.NewEpisodeSet()

	showID, ok, err := k.findShow(ctx, imdbID)
	if err != nil {
		return owned, err
	}
	if !ok {
		return owned, nil
	}

	episodes := make([]*model.Episode, 0)
	stmt := table.Episode.SELECT(table.Episode.AllColumns).FROM(table.Episode).WHERE(table.Episode.IDShow.EQ(sqlite.Int32(showID)))
	if err := stmt.QueryContext(ctx, k.db, &episodes); err != nil {
		log.Errorf("failed to list episodes: %v", err)
		return owned, err
	}

	for _, e := range episodes {
		key, ok := episodeKey(e)
		if !ok {
			log.Warnw("skipping episode without season or number", "id", e.IDEpisode)
			continue
		}
		owned.Add(key)
	}

	return owned, nil
}

// OwnedFilm reports whether Kodi has the film. It matches on the stored IMDb
// id first and falls back to title and year for entries scraped without one.
func (k Kodi) OwnedFilm(ctx context.Context, imdbID, title string, year int) (bool, error) {
	log := logger.FromCtx(ctx)

	movies := make([]*model.Movie, 0)
	stmt := table.Movie.SELECT(table.Movie.AllColumns).FROM(table.Movie)
	if err := stmt.QueryContext(ctx, k.db, &movies); err != nil {
		log.Errorf("failed to list movies: %v", err)
		return false, err
	}

	for _, m := range movies {
		if imdbID != "" && m.C09 != nil && strings.TrimSpace(*m.C09) == imdbID {
			return true, nil
		}
		if m.C00 == nil || !strings.EqualFold(strings.TrimSpace(*m.C00), title) {
			continue
		}
		if m.C07 == nil {
			continue
		}
		if y, err := strconv.Atoi(strings.TrimSpace(*m.C07)); err == nil && y == year {
			return true, nil
		}
	}

	return false, nil
}

// findShow scans the tvshow table for the show whose episode guide carries
// the IMDb id.
func (k Kodi) findShow(ctx context.Context, imdbID string) (int32, bool, error) {
	log := logger.FromCtx(ctx)

	shows := make([]*model.Tvshow, 0)
	stmt := table.Tvshow.SELECT(table.Tvshow.AllColumns).FROM(table.Tvshow)
	if err := stmt.QueryContext(ctx, k.db, &shows); err != nil {
		log.Errorf("failed to list shows: %v", err)
		return 0, false, err
	}

	for _, s := range shows {
		if s.C10 == nil {
			continue
		}
		if guideImdbID(*s.C10) == imdbID {
			return s.IDShow, true, nil
		}
	}

	return 0, false, nil
}

// guideImdbID pulls the IMDb id out of an episode guide value. It returns
// the empty string when the guide can't be parsed.
func guideImdbID(guide string) string {
	raw := strings.TrimSpace(tagRegex.ReplaceAllString(guide, ""))
	if raw == "" {
		return ""
	}

	var ids map[string]string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return ""
	}

	return ids["imdb"]
}

func episodeKey(e *model.Episode) (media.EpisodeKey, bool) {
	if e.C12 == nil || e.C13 == nil {
		return media.EpisodeKey{}, false
	}

	season, err := strconv.Atoi(strings.TrimSpace(*e.C12))
	if err != nil {
		return media.EpisodeKey{}, false
	}

	episode, err := strconv.Atoi(strings.TrimSpace(*e.C13))
	if err != nil {
		return media.EpisodeKey{}, false
	}

	return media.EpisodeKey{Season: season, Episode: episode}, true
}
