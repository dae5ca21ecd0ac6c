package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFileEnvelope(t *testing.T) {
	path := writeFile(t, "batch.json", `{
		"artist_name": "Night Palms",
		"artist_id": "4aawyAB9vmqN3uQ7FjRGTy",
		"recordings": [
			{"id": "t1", "title": "Sahara", "artists": ["Night Palms"], "album": "Dunes", "isrc": "QM4TW2421567", "duration_ms": 201000, "track_number": 1, "disc_number": 1}
		]
	}`)

	batch, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if batch.ArtistName != "Night Palms" {
		t.Fatalf("unexpected artist %q", batch.ArtistName)
	}
	if len(batch.Recordings) != 1 {
		t.Fatalf("expected 1 recording, got %d", len(batch.Recordings))
	}
	rec := batch.Recordings[0]
	if rec.PrimaryArtist() != "Night Palms" {
		t.Fatalf("unexpected primary artist %q", rec.PrimaryArtist())
	}
	if rec.DurationSeconds() != 201 {
		t.Fatalf("unexpected duration %d", rec.DurationSeconds())
	}
}

func TestLoadFileEmptyEnvelope(t *testing.T) {
	path := writeFile(t, "empty.json", `{"artist_name": "Night Palms", "recordings": []}`)

	batch, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if batch.ArtistName != "Night Palms" {
		t.Fatalf("unexpected artist %q", batch.ArtistName)
	}
	if len(batch.Recordings) != 0 {
		t.Fatalf("expected empty batch, got %d recordings", len(batch.Recordings))
	}
}

func TestLoadFileBareArray(t *testing.T) {
	path := writeFile(t, "recordings.json", `[
		{"id": "t1", "title": "Jump", "artists": ["Van Halen"]},
		{"id": "t2", "title": "Panama", "artists": ["Van Halen"]}
	]`)

	batch, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if len(batch.Recordings) != 2 {
		t.Fatalf("expected 2 recordings, got %d", len(batch.Recordings))
	}
	if batch.ArtistName != "" {
		t.Fatalf("expected empty artist for bare array, got %q", batch.ArtistName)
	}
}

func TestLoadFileRejectsGarbage(t *testing.T) {
	path := writeFile(t, "bad.json", `not json`)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}
