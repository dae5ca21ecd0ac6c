package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var folderCaser = cases.Title(language.Und, cases.NoLower)

// ArtistFolder converts an artist name into the directory component for a
// per-run output folder. Words are title-cased and joined with underscores;
// path separators and wildcards become dashes, characters unrepresentable in
// directory names are dropped. Returns "unknown" when nothing usable remains.
func ArtistFolder(name string) string {
	words := strings.Fields(folderCaser.String(name))
	parts := make([]string, 0, len(words))
	for _, word := range words {
		var b strings.Builder
		for _, r := range word {
			switch r {
			case '/', '\\', ':', '*':
				b.WriteRune('-')
			case '?', '"', '<', '>', '|':
			default:
				b.WriteRune(r)
			}
		}
		if part := strings.Trim(b.String(), "-"); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "_")
}
