package match

import (
	"fmt"

	"crosswalk/internal/services"
)

// Policy centralizes matching thresholds and confidence constants.
type Policy struct {
	// SimilarityThreshold is the minimum normalized-title similarity for a
	// text candidate to become a link.
	SimilarityThreshold float64
	// CodeMatchConfidence is the fixed confidence assigned to exact
	// recording-code matches.
	CodeMatchConfidence float64
	// TextMatchCap scales similarity into confidence, capping text matches
	// below code matches.
	TextMatchCap float64
}

// DefaultPolicy returns the standard matching constants.
func DefaultPolicy() Policy {
	return Policy{
		SimilarityThreshold: 0.85,
		CodeMatchConfidence: 0.95,
		TextMatchCap:        0.85,
	}
}

// Validate refuses to run with thresholds that would break the confidence
// ordering contract. Scoring determinism is a correctness property, so
// invalid values are fatal rather than silently defaulted.
func (p Policy) Validate() error {
	if p.SimilarityThreshold <= 0 || p.SimilarityThreshold > 1 {
		return services.Wrap(services.ErrConfiguration, "match", "policy",
			fmt.Sprintf("similarity_threshold must be in (0,1], got %v", p.SimilarityThreshold), nil)
	}
	if p.CodeMatchConfidence <= 0 || p.CodeMatchConfidence > 1 {
		return services.Wrap(services.ErrConfiguration, "match", "policy",
			fmt.Sprintf("code_match_confidence must be in (0,1], got %v", p.CodeMatchConfidence), nil)
	}
	if p.TextMatchCap <= 0 || p.TextMatchCap > 1 {
		return services.Wrap(services.ErrConfiguration, "match", "policy",
			fmt.Sprintf("text_match_cap must be in (0,1], got %v", p.TextMatchCap), nil)
	}
	if p.TextMatchCap >= p.CodeMatchConfidence {
		return services.Wrap(services.ErrConfiguration, "match", "policy",
			fmt.Sprintf("text_match_cap (%v) must stay below code_match_confidence (%v)", p.TextMatchCap, p.CodeMatchConfidence), nil)
	}
	return nil
}
