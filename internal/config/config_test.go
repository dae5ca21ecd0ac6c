package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "")

	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing file")
	}
	if path == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Matching.SimilarityThreshold != 0.85 {
		t.Fatalf("unexpected default threshold %v", cfg.Matching.SimilarityThreshold)
	}
	if cfg.Opportunity.HighThreshold != 70 || cfg.Opportunity.MediumThreshold != 50 {
		t.Fatalf("unexpected default thresholds: %+v", cfg.Opportunity)
	}
}

func TestLoadAppliesFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crosswalk.toml")
	content := `
output_dir = "out"
log_format = "json"

[matching]
similarity_threshold = 0.9

[opportunity.coverage_weights]
under_25 = 45
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected file to be found")
	}
	if cfg.Matching.SimilarityThreshold != 0.9 {
		t.Fatalf("override not applied: %v", cfg.Matching.SimilarityThreshold)
	}
	if cfg.Opportunity.Coverage.Under25 != 45 {
		t.Fatalf("nested override not applied: %v", cfg.Opportunity.Coverage.Under25)
	}
	// Untouched values keep defaults.
	if cfg.Matching.CodeMatchConfidence != 0.95 {
		t.Fatalf("default lost: %v", cfg.Matching.CodeMatchConfidence)
	}
	if !strings.HasSuffix(cfg.OutputDir, "out") || !filepath.IsAbs(cfg.OutputDir) {
		t.Fatalf("output dir not expanded: %q", cfg.OutputDir)
	}
}

func TestLoadEnvCredentialFallback(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "env-secret")

	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Spotify.ClientID != "env-id" || cfg.Spotify.ClientSecret != "env-secret" {
		t.Fatalf("env fallback not applied: %+v", cfg.Spotify)
	}
}

func TestValidateRejectsBrokenPolicy(t *testing.T) {
	cases := map[string]func(*Config){
		"negative threshold":    func(c *Config) { c.Matching.SimilarityThreshold = -0.1 },
		"cap above code":        func(c *Config) { c.Matching.TextMatchCap = 0.99 },
		"negative weight":       func(c *Config) { c.Opportunity.Coverage.Under25 = -1 },
		"unordered thresholds":  func(c *Config) { c.Opportunity.MediumThreshold = 90 },
		"zero concurrency":      func(c *Config) { c.Matching.Concurrency = 0 },
		"unknown log format":    func(c *Config) { c.LogFormat = "xml" },
		"missing mlc base url":  func(c *Config) { c.MLC.BaseURL = " " },
		"missing output dir":    func(c *Config) { c.OutputDir = "" },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "similarity_threshold") {
		t.Fatal("sample config missing matching section")
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected error when config already exists")
	}
}
