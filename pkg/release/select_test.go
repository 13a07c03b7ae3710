package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wversluys/fetcharr/pkg/quality"
)

func tiers(specs ...string) []quality.Tier {
	out := make([]quality.Tier, len(specs))
	for i, s := range specs {
		out[i] = quality.NewTier(s)
	}
	return out
}

func TestSelect(t *testing.T) {
	t.Run("empty candidate list is a caller error", func(t *testing.T) {
		_, _, err := Select(nil, tiers(""))
		assert.ErrorIs(t, err, ErrNoCandidates)
	})

	t.Run("tier specificity beats seeder count", func(t *testing.T) {
		candidates := []Candidate{
			{Name: "Show S01E02 720p", Seeders: 5},
			{Name: "Show S01E02 1080p BluRay", Seeders: 2},
		}

		chosen, tier, err := Select(candidates, tiers("1080p bluray", "720p", ""))
		require.NoError(t, err)
		assert.Equal(t, "Show S01E02 1080p BluRay", chosen.Name)
		assert.Equal(t, "1080p bluray", tier.String())
	})

	t.Run("seeders break ties within a tier", func(t *testing.T) {
		candidates := []Candidate{
			{Name: "Show S01E02 1080p x264", Seeders: 3},
			{Name: "Show S01E02 1080p x265", Seeders: 40},
		}

		chosen, _, err := Select(candidates, tiers("1080p", ""))
		require.NoError(t, err)
		assert.Equal(t, 40, chosen.Seeders)
	})

	t.Run("stable first-encountered tie-break", func(t *testing.T) {
		candidates := []Candidate{
			{Name: "Show S01E02 1080p first", Seeders: 7},
			{Name: "Show S01E02 1080p second", Seeders: 7},
		}

		chosen, _, err := Select(candidates, tiers("1080p", ""))
		require.NoError(t, err)
		assert.Equal(t, "Show S01E02 1080p first", chosen.Name)
	})

	t.Run("idempotent for the same inputs", func(t *testing.T) {
		candidates := []Candidate{
			{Name: "Show S01E02 720p", Seeders: 5},
			{Name: "Show S01E02 1080p", Seeders: 5},
		}
		order := tiers("1080p", "720p", "")

		first, _, err := Select(candidates, order)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, _, err := Select(candidates, order)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("catch-all tier matches everything", func(t *testing.T) {
		candidates := []Candidate{
			{Name: "Totally Unranked Release", Seeders: 1},
		}

		chosen, tier, err := Select(candidates, tiers("2160p", ""))
		require.NoError(t, err)
		assert.Equal(t, "Totally Unranked Release", chosen.Name)
		assert.True(t, tier.IsCatchAll())
	})

	t.Run("malformed policy falls back to most seeded", func(t *testing.T) {
		candidates := []Candidate{
			{Name: "one", Seeders: 2},
			{Name: "two", Seeders: 9},
		}

		chosen, tier, err := Select(candidates, tiers("2160p"))
		require.NoError(t, err)
		assert.Equal(t, "two", chosen.Name)
		assert.Nil(t, tier)
	})

	t.Run("film name matches web-dl tier but not 2160p", func(t *testing.T) {
		name := "Movie.Title.2020.1080p.WEB-DL"
		assert.True(t, quality.NewTier("1080p web-dl").Matches(name))
		assert.False(t, quality.NewTier("2160p").Matches(name))
	})
}

func TestCandidate_MagnetURI(t *testing.T) {
	c := Candidate{
		Name:      "Show S01E02 1080p",
		ContentID: "abcdef0123456789",
	}
	assert.Equal(t, "magnet:?xt=urn:btih:abcdef0123456789&dn=Show+S01E02+1080p", c.MagnetURI())
}
