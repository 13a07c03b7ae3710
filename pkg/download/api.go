// Package download submits releases to a download client.
package download

import (
	"context"
	"fmt"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type DownloadClient interface {
	// Add hands a release to the client. It returns once the client has
	// accepted the download.
	Add(ctx context.Context, request AddRequest) error
}

// AddRequest describes a single download to submit.
type AddRequest struct {
	MagnetURI string
	// SavePath is the directory the client should download into.
	SavePath string
	// Category tags the download inside the client, typically with the
	// media item it belongs to.
	Category string
}

// Config selects and configures a download client implementation.
type Config struct {
	Implementation string
	Scheme         string
	Host           string
	Port           int
	Username       string
	Password       string
}

type Factory interface {
	NewDownloadClient(config Config) (DownloadClient, error)
}

type DownloadClientFactory struct {
	http HTTPClient
}

func NewDownloadClientFactory(http HTTPClient) Factory {
	return DownloadClientFactory{http: http}
}

// NewDownloadClient returns a download client for the given configuration
func (f DownloadClientFactory) NewDownloadClient(config Config) (DownloadClient, error) {
	switch config.Implementation {
	case "qbittorrent":
		return NewQbittorrentClient(f.http, config.Scheme, config.Host, config.Port, config.Username, config.Password), nil
	case "transmission":
		return NewTransmissionClient(f.http, config.Scheme, config.Host, config.Port), nil
	default:
		return nil, fmt.Errorf("unknown download client implementation: %v", config.Implementation)
	}
}
