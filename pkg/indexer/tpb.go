package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wversluys/fetcharr/pkg/cache"
	mhttp "github.com/wversluys/fetcharr/pkg/http"
	"github.com/wversluys/fetcharr/pkg/logger"
	"github.com/wversluys/fetcharr/pkg/release"
)

const noResultsName = "No results returned"

// TPBClient searches an apibay-compatible index.
type TPBClient struct {
	http    HTTPClient
	baseURL string
	cache   *cache.Cache[string, []release.Candidate]
}

type TPBOption func(*TPBClient)

// WithCacheTTL enables response caching for identical queries.
func WithCacheTTL(ttl time.Duration) TPBOption {
	return func(c *TPBClient) {
		c.cache = cache.New[string, []release.Candidate](ttl)
	}
}

func NewTPBClient(httpClient HTTPClient, baseURL string, opts ...TPBOption) *TPBClient {
	c := &TPBClient{
		http:    httpClient,
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// tpbRelease is one row of an apibay response. The API encodes every numeric
// field as a string.
type tpbRelease struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	InfoHash string `json:"info_hash"`
	Seeders  string `json:"seeders"`
	Leechers string `json:"leechers"`
	NumFiles string `json:"num_files"`
	Size     string `json:"size"`
}

// Search queries the index. The provider's "no results" sentinel row and an
// exhausted rate-limit retry both map to an empty list; malformed rows are
// dropped as data errors rather than failing the query.
func (c *TPBClient) Search(ctx context.Context, query string) ([]release.Candidate, error) {
	log := logger.FromCtx(ctx)

	if c.cache != nil {
		if cached, ok := c.cache.Get(query); ok {
			log.Debugw("index cache hit", "query", query)
			return cached, nil
		}
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid index base url: %w", err)
	}
	u.Path = "/q.php"
	u.RawQuery = url.Values{"q": []string{query}, "cat": []string{"0"}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// a query that stays rate limited degrades to no results
		if errors.Is(err, mhttp.ErrRateLimited) {
			log.Warnw("index rate limit held through every retry, treating as empty", "query", query)
			return nil, nil
		}
		return nil, fmt.Errorf("index search: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("index search: unexpected status %s", resp.Status)
	}

	var rows []tpbRelease
	if err := json.Unmarshal(b, &rows); err != nil {
		log.Warnw("index returned an unparseable page, treating as empty", "query", query, "error", err)
		return nil, nil
	}

	candidates := make([]release.Candidate, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" || row.Name == noResultsName {
			continue
		}
		if row.InfoHash == "" {
			log.Warnw("index row missing info hash, skipping", "name", row.Name)
			continue
		}

		candidates = append(candidates, release.Candidate{
			Name:      row.Name,
			ContentID: row.InfoHash,
			Seeders:   atoiDefault(row.Seeders),
			FileCount: atoiDefault(row.NumFiles),
			Size:      uint64(atoiDefault(row.Size)),
		})
	}

	if c.cache != nil {
		c.cache.Set(query, candidates)
	}

	return candidates, nil
}

func atoiDefault(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
