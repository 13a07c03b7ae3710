package indexer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mhttp "github.com/wversluys/fetcharr/pkg/http"
)

func TestTPBClient_Search(t *testing.T) {
	t.Run("parses rows with string numerics", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/q.php", r.URL.Path)
			assert.Equal(t, "The Show s01e03", r.URL.Query().Get("q"))
			assert.Equal(t, "0", r.URL.Query().Get("cat"))
			w.Write([]byte(`[
				{"id":"1","name":"The Show S01E03 1080p","info_hash":"AAAA","seeders":"42","leechers":"3","num_files":"1","size":"1073741824"},
				{"id":"2","name":"The Show S01E03 720p","info_hash":"BBBB","seeders":"7","leechers":"1","num_files":"1","size":"536870912"}
			]`))
		}))
		defer srv.Close()

		client := NewTPBClient(http.DefaultClient, srv.URL)
		candidates, err := client.Search(context.Background(), "The Show s01e03")
		require.NoError(t, err)
		require.Len(t, candidates, 2)

		assert.Equal(t, "The Show S01E03 1080p", candidates[0].Name)
		assert.Equal(t, "AAAA", candidates[0].ContentID)
		assert.Equal(t, 42, candidates[0].Seeders)
		assert.Equal(t, 1, candidates[0].FileCount)
		assert.Equal(t, uint64(1073741824), candidates[0].Size)
	})

	t.Run("no results sentinel maps to empty list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":"0","name":"No results returned","info_hash":"0000000000000000000000000000000000000000","seeders":"0","leechers":"0","num_files":"0","size":"0"}]`))
		}))
		defer srv.Close()

		client := NewTPBClient(http.DefaultClient, srv.URL)
		candidates, err := client.Search(context.Background(), "nothing")
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("unparseable page treated as empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>captcha</html>`))
		}))
		defer srv.Close()

		client := NewTPBClient(http.DefaultClient, srv.URL)
		candidates, err := client.Search(context.Background(), "anything")
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("rows without an info hash are skipped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"id":"1","name":"Broken Row","info_hash":"","seeders":"4","leechers":"0","num_files":"1","size":"1"},
				{"id":"2","name":"Good Row","info_hash":"CCCC","seeders":"4","leechers":"0","num_files":"1","size":"1"}
			]`))
		}))
		defer srv.Close()

		client := NewTPBClient(http.DefaultClient, srv.URL)
		candidates, err := client.Search(context.Background(), "anything")
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "Good Row", candidates[0].Name)
	})

	t.Run("exhausted rate limit treated as empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		limited := mhttp.NewRateLimitedClient(mhttp.WithMaxAttempts(2), mhttp.WithBaseBackoff(time.Millisecond))
		client := NewTPBClient(limited, srv.URL)
		candidates, err := client.Search(context.Background(), "anything")
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("server error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewTPBClient(http.DefaultClient, srv.URL)
		_, err := client.Search(context.Background(), "anything")
		assert.Error(t, err)
	})

	t.Run("cached query hits the server once", func(t *testing.T) {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.Write([]byte(`[{"id":"1","name":"The Show S01E03","info_hash":"AAAA","seeders":"1","leechers":"0","num_files":"1","size":"1"}]`))
		}))
		defer srv.Close()

		client := NewTPBClient(http.DefaultClient, srv.URL, WithCacheTTL(time.Minute))

		for i := 0; i < 3; i++ {
			candidates, err := client.Search(context.Background(), "The Show s01e03")
			require.NoError(t, err)
			assert.Len(t, candidates, 1)
		}
		assert.Equal(t, 1, hits)
	})
}
