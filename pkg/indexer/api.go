// Package indexer talks to the torrent search index.
package indexer

import (
	"context"
	"net/http"

	"github.com/wversluys/fetcharr/pkg/release"
)

// HTTPClient is the transport used by index clients, usually the shared
// rate-limited client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Searcher queries the index for candidates. Implementations return an empty
// list, not an error, when the provider reports no results.
type Searcher interface {
	Search(ctx context.Context, query string) ([]release.Candidate, error)
}
