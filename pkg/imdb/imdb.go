// Package imdb fetches episode metadata from an IMDb-compatible API
// (api.imdbapi.dev by default).
package imdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/wversluys/fetcharr/pkg/logger"
	"github.com/wversluys/fetcharr/pkg/media"
)

// HTTPClient is the transport used by the client, usually the shared
// rate-limited client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	http    HTTPClient
	baseURL string
}

func New(httpClient HTTPClient, baseURL string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
	}
}

// Episode is one episode record with its optional air date. An episode
// without a complete air date is treated as unaired.
type Episode struct {
	Key   media.EpisodeKey
	Aired *time.Time
}

// flexInt tolerates the API's habit of returning numerics as either JSON
// numbers or strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexInt(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

type releaseDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d releaseDate) complete() bool {
	return d.Year != 0 && d.Month != 0 && d.Day != 0
}

func (d releaseDate) time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

type episodeRecord struct {
	Season        *flexInt                       `json:"season"`
	EpisodeNumber *flexInt                       `json:"episodeNumber"`
	ReleaseDate   nullable.Nullable[releaseDate] `json:"releaseDate"`
}

type episodesPage struct {
	Episodes      []episodeRecord `json:"episodes"`
	NextPageToken string          `json:"nextPageToken"`
}

// AllEpisodes walks the paginated episode list for a title until the
// provider stops returning a continuation token. Records without a season or
// episode number are data errors: skipped and logged.
func (c *Client) AllEpisodes(ctx context.Context, imdbID string) ([]Episode, error) {
	log := logger.FromCtx(ctx)

	var episodes []Episode
	token := ""
	for {
		page, err := c.episodes(ctx, imdbID, token)
		if err != nil {
			return nil, err
		}

		for _, record := range page.Episodes {
			if record.Season == nil || record.EpisodeNumber == nil {
				log.Warnw("episode record missing season or number, skipping", "imdb_id", imdbID)
				continue
			}

			ep := Episode{
				Key: media.EpisodeKey{
					Season:  int(*record.Season),
					Episode: int(*record.EpisodeNumber),
				},
			}

			if date, err := record.ReleaseDate.Get(); err == nil && date.complete() {
				aired := date.time()
				ep.Aired = &aired
			}

			episodes = append(episodes, ep)
		}

		if page.NextPageToken == "" {
			return episodes, nil
		}
		token = page.NextPageToken
	}
}

func (c *Client) episodes(ctx context.Context, imdbID, pageToken string) (episodesPage, error) {
	var page episodesPage

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return page, fmt.Errorf("invalid metadata base url: %w", err)
	}
	u.Path = fmt.Sprintf("/titles/%s/episodes", imdbID)
	if pageToken != "" {
		u.RawQuery = url.Values{"pageToken": []string{pageToken}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return page, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return page, fmt.Errorf("fetching episodes for %s: %w", imdbID, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return page, err
	}

	if resp.StatusCode != http.StatusOK {
		return page, fmt.Errorf("fetching episodes for %s: unexpected status %s", imdbID, resp.Status)
	}

	err = json.Unmarshal(b, &page)
	return page, err
}
