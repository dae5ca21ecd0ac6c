package match

import (
	"regexp"
	"strings"
)

var (
	bracketPattern = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)

	// qualifierPattern strips trailing qualifier phrases at clause boundaries:
	// dash-introduced qualifiers from a fixed vocabulary, plus bare
	// feat./featuring credits. Everything after the qualifier goes with it.
	qualifierPattern = regexp.MustCompile(`\s*[-–—]\s*(?:\d{4}\s+)?(?:` +
		`feat\.?|ft\.?|featuring|` +
		`remaster(?:ed)?|remix(?:ed)?|live|acoustic|instrumental|` +
		`sped up|slowed(?: down)?|` +
		`deluxe|mono|stereo|radio edit|extended|` +
		`single version|album version|bonus track|` +
		`\S+ (?:version|edit|edition|mix)` +
		`)\b.*$` +
		`|\s+(?:feat\.?|ft\.?|featuring)\b.*$`)

	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)
)

// Normalize canonicalizes a free-text title for comparison: lowercase, strip
// bracketed qualifiers and trailing qualifier phrases, collapse punctuation
// and whitespace to single spaces, trim. Pure and idempotent; pathological
// input normalizes to the empty string.
func Normalize(title string) string {
	out := strings.ToLower(title)
	out = bracketPattern.ReplaceAllString(out, " ")
	out = qualifierPattern.ReplaceAllString(out, " ")
	out = punctuationPattern.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
