package match

import (
	"crosswalk/internal/catalog"
	"crosswalk/internal/registry"
)

// Strategy identifies which matching strategy produced a link.
type Strategy string

const (
	// StrategyCodeMatch is an exact lookup by industry recording code.
	StrategyCodeMatch Strategy = "code_match"
	// StrategyTextSimilarity is a normalized-title similarity match.
	StrategyTextSimilarity Strategy = "text_similarity"
)

// Link connects a recording to a candidate composition with a bounded
// confidence. Raw links are never deduplicated; the reconciler dedups works
// at aggregation.
type Link struct {
	Recording  catalog.Recording
	Work       registry.Composition
	Strategy   Strategy
	Confidence float64
	Notes      string
}

// Outcome is the terminal matching state for one recording. Zero links with
// Failed unset means the recording was checked and nothing matched; Failed
// distinguishes recordings degraded by a provider or record fault.
type Outcome struct {
	Recording catalog.Recording
	Links     []Link
	Failed    bool
	Note      string
}

// Registered reports whether the recording holds at least one link.
func (o Outcome) Registered() bool {
	return len(o.Links) > 0
}
