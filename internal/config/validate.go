package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. Scoring and threshold
// mistakes are refused here rather than silently defaulted, since matching
// determinism depends on them.
func (c *Config) Validate() error {
	if err := c.validateGeneral(); err != nil {
		return err
	}
	if err := c.validateMLC(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateOpportunity(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGeneral() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir must be set")
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	return nil
}

func (c *Config) validateMLC() error {
	if strings.TrimSpace(c.MLC.BaseURL) == "" {
		return errors.New("mlc.base_url must be set")
	}
	if c.MLC.PageSize <= 0 {
		return errors.New("mlc.page_size must be positive")
	}
	if c.MLC.MaxRetries < 0 {
		return errors.New("mlc.max_retries must not be negative")
	}
	return nil
}

func (c *Config) validateMatching() error {
	m := c.Matching
	if m.SimilarityThreshold <= 0 || m.SimilarityThreshold > 1 {
		return errors.New("matching.similarity_threshold must be between 0 and 1")
	}
	if m.CodeMatchConfidence <= 0 || m.CodeMatchConfidence > 1 {
		return errors.New("matching.code_match_confidence must be between 0 and 1")
	}
	if m.TextMatchCap <= 0 || m.TextMatchCap > 1 {
		return errors.New("matching.text_match_cap must be between 0 and 1")
	}
	if m.TextMatchCap >= m.CodeMatchConfidence {
		return errors.New("matching.text_match_cap must stay below matching.code_match_confidence")
	}
	if m.Concurrency <= 0 {
		return errors.New("matching.concurrency must be positive")
	}
	return nil
}

func (c *Config) validateOpportunity() error {
	o := c.Opportunity
	for name, value := range map[string]int{
		"opportunity.coverage_weights.under_25":              o.Coverage.Under25,
		"opportunity.coverage_weights.under_50":              o.Coverage.Under50,
		"opportunity.coverage_weights.under_75":              o.Coverage.Under75,
		"opportunity.coverage_weights.covered":               o.Coverage.Covered,
		"opportunity.representation_weights.no_major":        o.Representation.NoMajor,
		"opportunity.representation_weights.no_indie":        o.Representation.NoIndie,
		"opportunity.representation_weights.self_published":  o.Representation.SelfPublished,
		"opportunity.catalog_weights.over_50":                o.Catalog.Over50,
		"opportunity.catalog_weights.over_20":                o.Catalog.Over20,
		"opportunity.catalog_weights.base":                   o.Catalog.Base,
	} {
		if value < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	if o.HighThreshold <= 0 || o.HighThreshold > 100 {
		return errors.New("opportunity.high_threshold must be between 1 and 100")
	}
	if o.MediumThreshold <= 0 || o.MediumThreshold >= o.HighThreshold {
		return errors.New("opportunity.medium_threshold must be positive and below opportunity.high_threshold")
	}
	return nil
}
