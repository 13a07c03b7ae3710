// Package catalog loads the list of desired series and films from the
// catalog configuration file.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wversluys/fetcharr/pkg/logger"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind distinguishes the two media types a catalog entry can describe.
type Kind string

const (
	KindSeries Kind = "series"
	KindFilm   Kind = "film"
)

// MediaItem is one desired entry from the catalog. Items are read-only for
// the duration of a run.
type MediaItem struct {
	Kind   Kind   `json:"-"`
	Title  string `json:"title" validate:"required"`
	ImdbID string `json:"imdb_id,omitempty"`
	Year   int    `json:"year,omitempty" validate:"omitempty,gte=1880"`
	// Seasons restricts which seasons are considered; empty means all.
	Seasons []int `json:"seasons,omitempty" validate:"omitempty,dive,gt=0"`
}

var unsafeFilenameChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// Category returns the item's title shaped into a download-client category
// label: filesystem-unsafe characters replaced and words title-cased.
func (m MediaItem) Category() string {
	caser := cases.Title(language.English)
	return strings.TrimSpace(caser.String(unsafeFilenameChars.ReplaceAllString(m.Title, "_")))
}

// SeasonWanted reports whether the item's season filter admits the season.
func (m MediaItem) SeasonWanted(season int) bool {
	if len(m.Seasons) == 0 {
		return true
	}
	for _, s := range m.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

// Catalog is the ordered set of desired media, series first then films,
// matching the order entries are processed in.
type Catalog struct {
	Series []MediaItem `json:"series"`
	Films  []MediaItem `json:"films"`
}

// Items returns every valid entry in processing order.
func (c Catalog) Items() []MediaItem {
	items := make([]MediaItem, 0, len(c.Series)+len(c.Films))
	items = append(items, c.Series...)
	return append(items, c.Films...)
}

// Load reads and validates the catalog file. A missing or unreadable file is
// fatal; individually malformed entries are dropped with a warning.
func Load(ctx context.Context, path string) (Catalog, error) {
	log := logger.FromCtx(ctx)

	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}

	var raw Catalog
	if err := json.Unmarshal(b, &raw); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}

	validate := validator.New()
	out := Catalog{}
	for _, item := range raw.Series {
		item.Kind = KindSeries
		if err := validate.Struct(item); err != nil {
			log.Warnw("skipping invalid series entry", "title", item.Title, "error", err)
			continue
		}
		out.Series = append(out.Series, item)
	}
	for _, item := range raw.Films {
		item.Kind = KindFilm
		if err := validate.Struct(item); err != nil {
			log.Warnw("skipping invalid film entry", "title", item.Title, "error", err)
			continue
		}
		out.Films = append(out.Films, item)
	}

	return out, nil
}

// Save writes the catalog back to disk. Used by the catalog editor API.
func Save(path string, c Catalog) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
