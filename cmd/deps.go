package cmd

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wversluys/fetcharr/config"
	"github.com/wversluys/fetcharr/pkg/download"
	mhttp "github.com/wversluys/fetcharr/pkg/http"
	"github.com/wversluys/fetcharr/pkg/imdb"
	"github.com/wversluys/fetcharr/pkg/indexer"
	"github.com/wversluys/fetcharr/pkg/library"
	"github.com/wversluys/fetcharr/pkg/library/kodi"
	"github.com/wversluys/fetcharr/pkg/manager"
	"github.com/wversluys/fetcharr/pkg/storage"
	"github.com/wversluys/fetcharr/pkg/storage/sqlite"
)

// newSearcher builds the indexer client from configuration.
func newSearcher(cfg config.Config) indexer.Searcher {
	indexURL := url.URL{
		Scheme: cfg.Index.Scheme,
		Host:   cfg.Index.Host,
	}

	client := mhttp.NewRateLimitedClient(
		mhttp.WithMaxAttempts(cfg.Index.MaxRetries),
		mhttp.WithBaseBackoff(cfg.Index.BaseBackoff),
	)

	return indexer.NewTPBClient(client, indexURL.String(), indexer.WithCacheTTL(cfg.Index.CacheTTL))
}

// newManager wires every dependency of a synchronization run together.
func newManager(ctx context.Context, cfg config.Config) (manager.MediaManager, error) {
	metadataURL := url.URL{
		Scheme: cfg.Metadata.Scheme,
		Host:   cfg.Metadata.Host,
	}
	metadataHTTP := mhttp.NewRateLimitedClient(
		mhttp.WithMaxAttempts(cfg.Metadata.MaxRetries),
		mhttp.WithBaseBackoff(cfg.Metadata.BaseBackoff),
	)
	metadata := imdb.New(metadataHTTP, metadataURL.String())

	var lib library.Library = library.Disabled{}
	if cfg.Library.KodiDB != "" {
		kodiLib, err := kodi.New(cfg.Library.KodiDB)
		if err != nil {
			return manager.MediaManager{}, err
		}
		lib = kodiLib
	}

	store, err := newStorage(ctx, cfg)
	if err != nil {
		return manager.MediaManager{}, err
	}

	factory := download.NewDownloadClientFactory(http.DefaultClient)
	downloads, err := factory.NewDownloadClient(download.Config{
		Implementation: cfg.Downloads.Implementation,
		Scheme:         cfg.Downloads.Scheme,
		Host:           cfg.Downloads.Host,
		Port:           cfg.Downloads.Port,
		Username:       cfg.Downloads.Username,
		Password:       cfg.Downloads.Password,
	})
	if err != nil {
		return manager.MediaManager{}, err
	}

	return manager.New(newSearcher(cfg), metadata, lib, store, downloads, manager.Config{
		SavePath: cfg.Downloads.SavePath,
	}), nil
}

// newStorage opens the grab ledger and brings its schema up to date.
func newStorage(ctx context.Context, cfg config.Config) (storage.Storage, error) {
	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return nil, err
	}

	if err := store.RunMigrations(ctx); err != nil {
		return nil, err
	}

	return store, nil
}
