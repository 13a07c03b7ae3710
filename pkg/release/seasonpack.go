package release

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	singleEpisodeRegex = regexp.MustCompile(`(?i)s\d{2}e\d{2}`)
	separatorRegex     = regexp.MustCompile(`[._]`)
)

// IsSeasonPack decides whether a candidate is a legitimate whole-season
// release for the given series and season. All rules must hold:
//
//  1. the name contains the series title and, after it, either
//     "season <n>" or the zero-padded "s<nn>" marker;
//  2. the name carries no single-episode sNNeNN marker, which would indicate
//     a mislabeled episode release;
//  3. the release has at least as many files as the season has aired
//     episodes.
//
// A rejected candidate may still be picked through the ordinary per-episode
// path; it is only barred from the pack path.
func IsSeasonPack(seriesTitle string, season int, c Candidate, requiredEpisodes int) bool {
	// release names separate words with dots or underscores as often as
	// spaces
	name := separatorRegex.ReplaceAllString(strings.ToLower(c.Name), " ")
	title := strings.ToLower(strings.TrimSpace(seriesTitle))
	if title == "" {
		return false
	}

	idx := strings.Index(name, title)
	if idx < 0 {
		return false
	}

	afterTitle := name[idx+len(title):]
	wordMarker := fmt.Sprintf("season %d", season)
	compactMarker := fmt.Sprintf("s%02d", season)
	if !strings.Contains(afterTitle, wordMarker) && !strings.Contains(afterTitle, compactMarker) {
		return false
	}

	if singleEpisodeRegex.MatchString(name) {
		return false
	}

	return c.FileCount >= requiredEpisodes
}
