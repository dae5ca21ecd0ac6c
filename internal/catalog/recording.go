package catalog

import "strings"

// Recording is a performed track from a streaming catalog. Immutable once
// fetched; one per distinct catalog entry.
type Recording struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Artists     []string `json:"artists"`
	Album       string   `json:"album"`
	ISRC        string   `json:"isrc,omitempty"`
	DurationMS  int      `json:"duration_ms"`
	ReleaseDate string   `json:"release_date,omitempty"`
	TrackNumber int      `json:"track_number"`
	DiscNumber  int      `json:"disc_number"`
}

// PrimaryArtist returns the first listed performer, or empty when unknown.
func (r Recording) PrimaryArtist() string {
	if len(r.Artists) == 0 {
		return ""
	}
	return r.Artists[0]
}

// ArtistList renders the performer names as a comma-separated string.
func (r Recording) ArtistList() string {
	return strings.Join(r.Artists, ", ")
}

// DurationSeconds returns the track length in whole seconds.
func (r Recording) DurationSeconds() int {
	return r.DurationMS / 1000
}
