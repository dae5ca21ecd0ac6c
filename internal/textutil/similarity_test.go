package textutil

import (
	"math"
	"testing"
)

func TestSequenceSimilarityIdentical(t *testing.T) {
	if got := SequenceSimilarity("sahara", "sahara"); got != 1 {
		t.Fatalf("expected 1 for identical strings, got %f", got)
	}
	if got := SequenceSimilarity("", ""); got != 1 {
		t.Fatalf("expected 1 for two empty strings, got %f", got)
	}
}

func TestSequenceSimilarityDisjoint(t *testing.T) {
	if got := SequenceSimilarity("abc", "xyz"); got != 0 {
		t.Fatalf("expected 0 for disjoint strings, got %f", got)
	}
	if got := SequenceSimilarity("abc", ""); got != 0 {
		t.Fatalf("expected 0 against empty string, got %f", got)
	}
}

func TestSequenceSimilarityPartial(t *testing.T) {
	// "jump" vs "jumpin": common run "jump" (4 chars), total 10 -> 0.8.
	got := SequenceSimilarity("jump", "jumpin")
	if math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("expected 0.8, got %f", got)
	}
}

func TestSequenceSimilarityRecursesOutsideLongestRun(t *testing.T) {
	// The longest run is only "ab" (or "cd"); the recursion into the
	// remainders must pick up the other run as well.
	got := SequenceSimilarity("abXcd", "abYcd")
	want := 2 * 4.0 / 10.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestSequenceSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"sahara", "sahara desert song"},
		{"a", "b"},
		{"hold on", "holding on"},
		{"ünïcode", "unicode"},
	}
	for _, pair := range pairs {
		got := SequenceSimilarity(pair[0], pair[1])
		if got < 0 || got > 1 {
			t.Fatalf("similarity out of bounds for %q/%q: %f", pair[0], pair[1], got)
		}
	}
}

func TestArtistFolder(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"dua lipa", "Dua_Lipa"},
		{"AC/DC", "AC-DC"},
		{"the midnight  club", "The_Midnight_Club"},
		{`what? "why" <now>`, "What_Why_Now"},
		{"", "unknown"},
		{"***", "unknown"},
	}
	for _, tc := range cases {
		if got := ArtistFolder(tc.in); got != tc.want {
			t.Errorf("ArtistFolder(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
