package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		path := writeCatalog(t, `{
			"series": [
				{"title": "The Show", "imdb_id": "tt0000001", "seasons": [1, 2]}
			],
			"films": [
				{"title": "Some Film", "imdb_id": "tt0000002", "year": 2020}
			]
		}`)

		c, err := Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, c.Series, 1)
		require.Len(t, c.Films, 1)

		assert.Equal(t, KindSeries, c.Series[0].Kind)
		assert.Equal(t, []int{1, 2}, c.Series[0].Seasons)
		assert.Equal(t, KindFilm, c.Films[0].Kind)
		assert.Equal(t, 2020, c.Films[0].Year)

		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "The Show", items[0].Title)
		assert.Equal(t, "Some Film", items[1].Title)
	})

	t.Run("malformed entries skipped, not fatal", func(t *testing.T) {
		path := writeCatalog(t, `{
			"series": [
				{"title": ""},
				{"title": "Kept", "seasons": [0]},
				{"title": "Valid"}
			]
		}`)

		c, err := Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, c.Series, 1)
		assert.Equal(t, "Valid", c.Series[0].Title)
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json is fatal", func(t *testing.T) {
		path := writeCatalog(t, `{not json`)
		_, err := Load(context.Background(), path)
		assert.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	in := Catalog{
		Series: []MediaItem{{Title: "The Show", ImdbID: "tt0000001"}},
	}

	require.NoError(t, Save(path, in))

	out, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, out.Series, 1)
	assert.Equal(t, "The Show", out.Series[0].Title)
}

func TestMediaItem_Category(t *testing.T) {
	assert.Equal(t, "The Show", MediaItem{Title: "the show"}.Category())
	assert.Equal(t, "What_ A Show", MediaItem{Title: "What? A show"}.Category())
}

func TestMediaItem_SeasonWanted(t *testing.T) {
	unfiltered := MediaItem{Title: "x"}
	assert.True(t, unfiltered.SeasonWanted(3))

	filtered := MediaItem{Title: "x", Seasons: []int{1, 3}}
	assert.True(t, filtered.SeasonWanted(1))
	assert.False(t, filtered.SeasonWanted(2))
}
