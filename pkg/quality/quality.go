// Package quality builds the ordered quality-preference policy used to rank
// search results and matches release names against it.
package quality

import "strings"

// Tier is a conjunction of lower-cased tokens that must all appear in a
// release name for the tier to match. Tiers are consulted most specific
// first; the empty tier matches everything and terminates the policy.
type Tier []string

// NewTier builds a tier from a space-separated spec such as "1080p bluray".
func NewTier(spec string) Tier {
	return Tier(strings.Fields(strings.ToLower(spec)))
}

// Matches reports whether every token of the tier occurs in name,
// case-insensitively. An empty tier always matches.
func (t Tier) Matches(name string) bool {
	lowered := strings.ToLower(name)
	for _, token := range t {
		if !strings.Contains(lowered, token) {
			return false
		}
	}
	return true
}

// IsCatchAll reports whether the tier has no tokens. The catch-all tier is
// never reported as a specific match in logs.
func (t Tier) IsCatchAll() bool {
	return len(t) == 0
}

func (t Tier) String() string {
	if t.IsCatchAll() {
		return "any"
	}
	return strings.Join(t, " ")
}

// Preference axes, each ordered most to least desirable.
var (
	resolutions  = []string{"2160p", "1080p", "720p", "480p"}
	audioFormats = []string{"atmos", "truehd", "dts-hd", "dts", "ddp"}
	codecs       = []string{"h265", "h264"}
	sources      = []string{"remux", "bluray", "web-dl", "webrip", "hdtv"}
)

// BuildTiers expands the preference axes into the full ordered policy.
// Per resolution (high to low): resolution+audio+codec triples, then
// resolution+audio pairs, then resolution+codec pairs, then the bare
// resolution. Source-only tiers follow, then the catch-all. Pure and
// deterministic; no input, no errors.
func BuildTiers() []Tier {
	var tiers []Tier

	for _, res := range resolutions {
		for _, audio := range audioFormats {
			for _, codec := range codecs {
				tiers = append(tiers, Tier{res, audio, codec})
			}
		}
		for _, audio := range audioFormats {
			tiers = append(tiers, Tier{res, audio})
		}
		for _, codec := range codecs {
			tiers = append(tiers, Tier{res, codec})
		}
		tiers = append(tiers, Tier{res})
	}

	for _, source := range sources {
		tiers = append(tiers, Tier{source})
	}

	return append(tiers, Tier{})
}
