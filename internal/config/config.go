package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Spotify contains credentials for the streaming-catalog API.
type Spotify struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// MLC contains configuration for the Mechanical Licensing Collective search.
type MLC struct {
	BaseURL    string `toml:"base_url"`
	PageSize   int    `toml:"page_size"`
	MaxRetries int    `toml:"max_retries"`
}

// Songview contains configuration for the stubbed Songview provider.
type Songview struct {
	Enabled bool `toml:"enabled"`
}

// Matching contains the matching pipeline thresholds and confidences.
type Matching struct {
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	CodeMatchConfidence float64 `toml:"code_match_confidence"`
	TextMatchCap        float64 `toml:"text_match_cap"`
	Concurrency         int     `toml:"concurrency"`
}

// CoverageWeights are the opportunity points per coverage band.
type CoverageWeights struct {
	Under25 int `toml:"under_25"`
	Under50 int `toml:"under_50"`
	Under75 int `toml:"under_75"`
	Covered int `toml:"covered"`
}

// RepresentationWeights are the opportunity points per representation signal.
type RepresentationWeights struct {
	NoMajor       int `toml:"no_major"`
	NoIndie       int `toml:"no_indie"`
	SelfPublished int `toml:"self_published"`
}

// CatalogWeights are the opportunity points per catalog-size band.
type CatalogWeights struct {
	Over50 int `toml:"over_50"`
	Over20 int `toml:"over_20"`
	Base   int `toml:"base"`
}

// Opportunity contains the scoring policy for the opportunity analyzer.
type Opportunity struct {
	MajorPublishers []string              `toml:"major_publishers"`
	HighThreshold   int                   `toml:"high_threshold"`
	MediumThreshold int                   `toml:"medium_threshold"`
	Coverage        CoverageWeights       `toml:"coverage_weights"`
	Representation  RepresentationWeights `toml:"representation_weights"`
	Catalog         CatalogWeights        `toml:"catalog_weights"`
}

// Config encapsulates all configuration values for crosswalk.
type Config struct {
	OutputDir string `toml:"output_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	Spotify     Spotify     `toml:"spotify"`
	MLC         MLC         `toml:"mlc"`
	Songview    Songview    `toml:"songview"`
	Matching    Matching    `toml:"matching"`
	Opportunity Opportunity `toml:"opportunity"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/crosswalk/config.toml")
}

// Load locates, parses, and validates a configuration file. Missing files
// fall back to defaults with environment credential fallbacks applied.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvFallbacks()

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func (c *Config) applyEnvFallbacks() {
	if c.Spotify.ClientID == "" {
		c.Spotify.ClientID = os.Getenv("SPOTIFY_CLIENT_ID")
	}
	if c.Spotify.ClientSecret == "" {
		c.Spotify.ClientSecret = os.Getenv("SPOTIFY_CLIENT_SECRET")
	}
}

func (c *Config) normalize() error {
	expanded, err := ExpandPath(c.OutputDir)
	if err != nil {
		return err
	}
	c.OutputDir = expanded
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	return nil
}

// EnsureDirectories creates the output directory tree.
func (c *Config) EnsureDirectories() error {
	if c.OutputDir == "" {
		return errors.New("output_dir must be set")
	}
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return fmt.Errorf("ensure output directory: %w", err)
	}
	return nil
}

// WriteSample materializes the embedded sample configuration at path.
func WriteSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("crosswalk.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// ExpandPath resolves ~ prefixes and returns an absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		path = filepath.Join(home, path[2:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	return abs, nil
}
