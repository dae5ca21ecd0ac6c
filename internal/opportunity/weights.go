package opportunity

import (
	"fmt"

	"crosswalk/internal/services"
)

// CoverageWeights are the additive points per registration-coverage band.
type CoverageWeights struct {
	Under25 int
	Under50 int
	Under75 int
	Covered int
}

// RepresentationWeights are the additive points per publisher-representation
// signal.
type RepresentationWeights struct {
	NoMajor       int
	NoIndie       int
	SelfPublished int
}

// CatalogWeights are the additive points per catalog-size band.
type CatalogWeights struct {
	Over50 int
	Over20 int
	Base   int
}

// Weights is the full opportunity scoring policy. Every band and threshold
// is independently overridable; the scored total is clamped to [0,100].
type Weights struct {
	Coverage        CoverageWeights
	Representation  RepresentationWeights
	Catalog         CatalogWeights
	HighThreshold   int
	MediumThreshold int
}

// DefaultWeights returns the standard scoring policy.
func DefaultWeights() Weights {
	return Weights{
		Coverage:        CoverageWeights{Under25: 40, Under50: 30, Under75: 20, Covered: 10},
		Representation:  RepresentationWeights{NoMajor: 30, NoIndie: 10, SelfPublished: 10},
		Catalog:         CatalogWeights{Over50: 20, Over20: 15, Base: 10},
		HighThreshold:   70,
		MediumThreshold: 50,
	}
}

// Validate refuses malformed scoring policy. Weights must be non-negative
// and the level thresholds must be ordered within [0,100].
func (w Weights) Validate() error {
	for name, value := range map[string]int{
		"coverage.under25":              w.Coverage.Under25,
		"coverage.under50":              w.Coverage.Under50,
		"coverage.under75":              w.Coverage.Under75,
		"coverage.covered":              w.Coverage.Covered,
		"representation.no_major":       w.Representation.NoMajor,
		"representation.no_indie":       w.Representation.NoIndie,
		"representation.self_published": w.Representation.SelfPublished,
		"catalog.over50":                w.Catalog.Over50,
		"catalog.over20":                w.Catalog.Over20,
		"catalog.base":                  w.Catalog.Base,
	} {
		if value < 0 {
			return services.Wrap(services.ErrConfiguration, "opportunity", "weights",
				fmt.Sprintf("%s must not be negative, got %d", name, value), nil)
		}
	}
	if w.HighThreshold <= 0 || w.HighThreshold > 100 {
		return services.Wrap(services.ErrConfiguration, "opportunity", "weights",
			fmt.Sprintf("high_threshold must be in (0,100], got %d", w.HighThreshold), nil)
	}
	if w.MediumThreshold <= 0 || w.MediumThreshold >= w.HighThreshold {
		return services.Wrap(services.ErrConfiguration, "opportunity", "weights",
			fmt.Sprintf("medium_threshold must be in (0,high_threshold), got %d", w.MediumThreshold), nil)
	}
	return nil
}
