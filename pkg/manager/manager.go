// Package manager drives a synchronization run: it works out what is
// missing, searches the indexer for it, and hands the best release to the
// download client.
package manager

import (
	"context"
	"time"

	"github.com/wversluys/fetcharr/pkg/download"
	"github.com/wversluys/fetcharr/pkg/imdb"
	"github.com/wversluys/fetcharr/pkg/indexer"
	"github.com/wversluys/fetcharr/pkg/library"
	"github.com/wversluys/fetcharr/pkg/quality"
	"github.com/wversluys/fetcharr/pkg/storage"
)

// MetadataClient lists the episodes a series is supposed to have.
type MetadataClient interface {
	AllEpisodes(ctx context.Context, imdbID string) ([]imdb.Episode, error)
}

var _ MetadataClient = &imdb.Client{}

type MediaManager struct {
	searcher  indexer.Searcher
	metadata  MetadataClient
	library   library.Library
	storage   storage.GrabStorage
	downloads download.DownloadClient
	config    Config
	now       func() time.Time
}

// Config carries the per-run knobs of a manager.
type Config struct {
	// SavePath is the download client's base directory; each item downloads
	// into a subdirectory named after its category.
	SavePath string
	// Tiers is the quality preference order. Empty means the built-in
	// ladder.
	Tiers []quality.Tier
}

func New(searcher indexer.Searcher, metadata MetadataClient, library library.Library, storage storage.GrabStorage, downloads download.DownloadClient, config Config) MediaManager {
	if len(config.Tiers) == 0 {
		config.Tiers = quality.BuildTiers()
	}

	return MediaManager{
		searcher:  searcher,
		metadata:  metadata,
		library:   library,
		storage:   storage,
		downloads: downloads,
		config:    config,
		now:       time.Now,
	}
}
