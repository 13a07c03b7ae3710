// Package release models index search results and picks the best one for a
// unit of work.
package release

import (
	"fmt"
	"net/url"
)

// Candidate is a single search result. Candidates are ephemeral; they live
// for one search and are never persisted.
type Candidate struct {
	// Name is the free-form display name of the release.
	Name string
	// ContentID is the opaque identifier used to build the acquisition
	// reference, an info hash for torrent indexes.
	ContentID string
	// Seeders breaks ties between candidates within a quality tier.
	Seeders int
	// FileCount is the number of files in the release, used to validate
	// season packs.
	FileCount int
	// Size in bytes, for logging only.
	Size uint64
}

// MagnetURI builds the acquisition reference handed to the download client.
func (c Candidate) MagnetURI() string {
	return fmt.Sprintf("magnet:?xt=urn:btih:%s&dn=%s", c.ContentID, url.QueryEscape(c.Name))
}
