package run

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"crosswalk/internal/catalog"
	"crosswalk/internal/config"
	"crosswalk/internal/registry"
	"crosswalk/internal/report"
)

type staticProvider struct {
	name    string
	byCode  map[string][]registry.Composition
	byTitle map[string][]registry.Composition
}

func (p *staticProvider) Name() string { return p.name }

func (p *staticProvider) LookupByCode(_ context.Context, code string) ([]registry.Composition, error) {
	return p.byCode[code], nil
}

func (p *staticProvider) SearchByTitle(_ context.Context, title, _ string) ([]registry.Composition, error) {
	return p.byTitle[title], nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

func testProvider() *staticProvider {
	work := registry.Composition{
		ID:       "W100",
		Title:    "Golden Hour",
		Provider: "MLC",
		Contributors: []registry.Contributor{
			{Name: "Riley Chen", Type: registry.ContributorWriter},
			{Name: "Harbor Songs", Type: registry.ContributorPublisher},
		},
	}
	return &staticProvider{
		name:   "MLC",
		byCode: map[string][]registry.Composition{"USXYZ2600001": {work}},
	}
}

func TestExecuteFromStreamingSource(t *testing.T) {
	cfg := testConfig(t)
	fetch := func(_ context.Context, artistID string) (*catalog.Batch, error) {
		return &catalog.Batch{
			ArtistName: "Riley Chen",
			ArtistID:   artistID,
			Recordings: []catalog.Recording{
				{ID: "t1", Title: "Golden Hour", Artists: []string{"Riley Chen"}, ISRC: "USXYZ2600001"},
				{ID: "t2", Title: "Blue Season", Artists: []string{"Riley Chen"}},
			},
		}, nil
	}

	fixed := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	runner, err := New(cfg, nil,
		WithProviders(testProvider()),
		WithCatalogFetcher(fetch),
		WithClock(func() time.Time { return fixed }),
	)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	result, err := runner.Execute(context.Background(), Source{ArtistInput: "3nJ9wnWSvmIJwpNnRKCGWc"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if result.RunID == "" {
		t.Error("expected a run ID")
	}
	wantDir := filepath.Join(cfg.OutputDir, "Riley_Chen_20260830_093000")
	if result.OutputDir != wantDir {
		t.Errorf("output dir = %q, want %q", result.OutputDir, wantDir)
	}
	if result.Summary.TotalRecordings != 2 || result.Summary.Registered != 1 {
		t.Errorf("unexpected summary counts: %+v", result.Summary)
	}
	if len(result.Aggregate.Works) != 1 {
		t.Errorf("expected 1 canonical work, got %d", len(result.Aggregate.Works))
	}

	for _, name := range []string{report.ComprehensiveFile, report.SummaryFile, report.MatchedWorksFile} {
		if _, err := os.Stat(filepath.Join(result.OutputDir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}

func TestExecuteFromInputFile(t *testing.T) {
	cfg := testConfig(t)

	batch := catalog.Batch{
		ArtistName: "Riley Chen",
		Recordings: []catalog.Recording{
			{ID: "t1", Title: "Golden Hour", Artists: []string{"Riley Chen"}, ISRC: "USXYZ2600001"},
		},
	}
	data, err := json.Marshal(batch)
	if err != nil {
		t.Fatalf("marshal batch: %v", err)
	}
	inputPath := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(inputPath, data, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	runner, err := New(cfg, nil, WithProviders(testProvider()))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	result, err := runner.Execute(context.Background(), Source{InputFile: inputPath})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Summary.Registered != 1 {
		t.Errorf("expected 1 registered recording, got %d", result.Summary.Registered)
	}
	if !strings.HasPrefix(filepath.Base(result.OutputDir), "Riley_Chen_") {
		t.Errorf("unexpected run folder %q", result.OutputDir)
	}
}

func TestNewRejectsInvalidPolicy(t *testing.T) {
	cfg := testConfig(t)
	cfg.Matching.TextMatchCap = 0.99

	if _, err := New(cfg, nil, WithProviders(testProvider())); err == nil {
		t.Fatal("expected error for text match cap above code confidence")
	}
}

func TestExecuteRejectsBadArtistInput(t *testing.T) {
	cfg := testConfig(t)
	runner, err := New(cfg, nil, WithProviders(testProvider()))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := runner.Execute(context.Background(), Source{ArtistInput: "not a spotify artist"}); err == nil {
		t.Fatal("expected error for unparseable artist input")
	}
}

func TestRunFolderNameSanitized(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := runFolderName("AC/DC tribute", at)
	if strings.ContainsAny(got, "/\\:") {
		t.Errorf("folder name %q contains unsafe characters", got)
	}
	if !strings.HasSuffix(got, "_20260102_030405") {
		t.Errorf("folder name %q missing timestamp suffix", got)
	}
}
