package run

import (
	"crosswalk/internal/config"
	"crosswalk/internal/match"
	"crosswalk/internal/opportunity"
)

// PolicyFromConfig maps the matching configuration section onto pipeline
// policy. Validation happens in the pipeline constructor.
func PolicyFromConfig(cfg config.Matching) match.Policy {
	return match.Policy{
		SimilarityThreshold: cfg.SimilarityThreshold,
		CodeMatchConfidence: cfg.CodeMatchConfidence,
		TextMatchCap:        cfg.TextMatchCap,
	}
}

// WeightsFromConfig maps the opportunity configuration section onto the
// analyzer's scoring policy.
func WeightsFromConfig(cfg config.Opportunity) opportunity.Weights {
	return opportunity.Weights{
		Coverage: opportunity.CoverageWeights{
			Under25: cfg.Coverage.Under25,
			Under50: cfg.Coverage.Under50,
			Under75: cfg.Coverage.Under75,
			Covered: cfg.Coverage.Covered,
		},
		Representation: opportunity.RepresentationWeights{
			NoMajor:       cfg.Representation.NoMajor,
			NoIndie:       cfg.Representation.NoIndie,
			SelfPublished: cfg.Representation.SelfPublished,
		},
		Catalog: opportunity.CatalogWeights{
			Over50: cfg.Catalog.Over50,
			Over20: cfg.Catalog.Over20,
			Base:   cfg.Catalog.Base,
		},
		HighThreshold:   cfg.HighThreshold,
		MediumThreshold: cfg.MediumThreshold,
	}
}
