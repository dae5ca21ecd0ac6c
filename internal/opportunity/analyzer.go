package opportunity

import (
	"fmt"
	"sort"
	"strings"

	"crosswalk/internal/match"
	"crosswalk/internal/reconcile"
	"crosswalk/internal/registry"
)

// Level is the discrete opportunity priority derived from the score.
type Level string

const (
	LevelHigh   Level = "HIGH"
	LevelMedium Level = "MEDIUM"
	LevelLow    Level = "LOW"
)

// DefaultMajorPublishers are the publisher names classified as majors, by
// case-insensitive substring match.
var DefaultMajorPublishers = []string{
	"SONY", "UNIVERSAL", "WARNER", "EMI", "BMG", "KOBALT", "CONCORD", "DOWNTOWN",
}

// PublisherCount is one publisher's share of the matched works.
type PublisherCount struct {
	Name  string
	Works int
	Major bool
}

// Summary is the analyzer's decision-support record.
type Summary struct {
	TotalRecordings int
	Registered      int
	Unregistered    int
	Degraded        int
	Coverage        float64

	Publishers            []PublisherCount
	HasMajor              bool
	HasIndie              bool
	SelfPublished         bool
	WorksWithoutPublisher int

	Score      int
	Level      Level
	KeyFactors []string
}

// Analyzer computes publishing-opportunity metrics over the aggregate result.
// Pure computation; it never fails on well-formed input.
type Analyzer struct {
	weights Weights
	majors  []string
}

// NewAnalyzer validates the scoring policy up front; an invalid policy is a
// fatal configuration error before any recording is processed.
func NewAnalyzer(weights Weights, majors []string) (*Analyzer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if len(majors) == 0 {
		majors = DefaultMajorPublishers
	}
	upper := make([]string, len(majors))
	for i, name := range majors {
		upper[i] = strings.ToUpper(strings.TrimSpace(name))
	}
	return &Analyzer{weights: weights, majors: upper}, nil
}

// Analyze derives coverage, publisher classification, and the opportunity
// score for one batch. An empty batch yields coverage 0.0 and a score from
// the representation and catalog bands only.
func (a *Analyzer) Analyze(outcomes []match.Outcome, agg reconcile.Result) Summary {
	summary := Summary{TotalRecordings: len(outcomes)}

	for _, outcome := range outcomes {
		if outcome.Registered() {
			summary.Registered++
		}
		if outcome.Failed {
			summary.Degraded++
		}
	}
	summary.Unregistered = summary.TotalRecordings - summary.Registered
	if summary.TotalRecordings > 0 {
		summary.Coverage = float64(summary.Registered) / float64(summary.TotalRecordings)
	}

	summary.Publishers = a.countPublishers(agg)
	for _, pub := range summary.Publishers {
		if pub.Major {
			summary.HasMajor = true
		} else {
			summary.HasIndie = true
		}
	}
	summary.SelfPublished = len(summary.Publishers) == 0
	for _, work := range agg.Works {
		if len(work.Work.Publishers()) == 0 {
			summary.WorksWithoutPublisher++
		}
	}

	summary.Score = a.score(summary)
	if summary.TotalRecordings == 0 {
		// An empty batch has no coverage signal to act on.
		summary.Level = LevelLow
	} else {
		summary.Level = a.level(summary.Score)
	}
	summary.KeyFactors = a.keyFactors(summary)
	return summary
}

func (a *Analyzer) countPublishers(agg reconcile.Result) []PublisherCount {
	counts := map[string]int{}
	var order []string
	for _, row := range agg.Contributors {
		if row.Contributor.Type != registry.ContributorPublisher {
			continue
		}
		name := strings.TrimSpace(row.Contributor.Name)
		if name == "" {
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	out := make([]PublisherCount, 0, len(order))
	for _, name := range order {
		out = append(out, PublisherCount{Name: name, Works: counts[name], Major: a.isMajor(name)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Works != out[j].Works {
			return out[i].Works > out[j].Works
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (a *Analyzer) isMajor(name string) bool {
	upper := strings.ToUpper(name)
	for _, major := range a.majors {
		if major != "" && strings.Contains(upper, major) {
			return true
		}
	}
	return false
}

func (a *Analyzer) score(s Summary) int {
	score := 0

	// The coverage band only applies when there is a catalog to cover; an
	// empty batch scores from the representation and catalog bands alone.
	if s.TotalRecordings > 0 {
		switch {
		case s.Coverage < 0.25:
			score += a.weights.Coverage.Under25
		case s.Coverage < 0.50:
			score += a.weights.Coverage.Under50
		case s.Coverage < 0.75:
			score += a.weights.Coverage.Under75
		default:
			score += a.weights.Coverage.Covered
		}
	}

	if !s.HasMajor {
		score += a.weights.Representation.NoMajor
	}
	if !s.HasIndie {
		score += a.weights.Representation.NoIndie
	}
	if s.SelfPublished {
		score += a.weights.Representation.SelfPublished
	}

	switch {
	case s.TotalRecordings > 50:
		score += a.weights.Catalog.Over50
	case s.TotalRecordings > 20:
		score += a.weights.Catalog.Over20
	default:
		score += a.weights.Catalog.Base
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func (a *Analyzer) level(score int) Level {
	switch {
	case score >= a.weights.HighThreshold:
		return LevelHigh
	case score >= a.weights.MediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

func (a *Analyzer) keyFactors(s Summary) []string {
	var factors []string
	if s.Unregistered > 0 && s.TotalRecordings > 0 {
		pct := float64(s.Unregistered) / float64(s.TotalRecordings) * 100
		factors = append(factors, fmt.Sprintf("%d unregistered recordings (%.0f%% of catalog)", s.Unregistered, pct))
	}
	switch {
	case s.TotalRecordings > 50:
		factors = append(factors, fmt.Sprintf("large catalog (%d recordings)", s.TotalRecordings))
	case s.TotalRecordings > 20:
		factors = append(factors, fmt.Sprintf("moderate catalog (%d recordings)", s.TotalRecordings))
	}
	if s.SelfPublished {
		factors = append(factors, "no publisher representation found")
	} else if !s.HasMajor {
		factors = append(factors, "no major publisher representation")
	}
	if s.HasIndie {
		factors = append(factors, "has indie publisher relationship")
	}
	if s.HasMajor {
		factors = append(factors, "already with major publisher")
	}
	if s.Degraded > 0 {
		factors = append(factors, fmt.Sprintf("%d recordings skipped after provider failures", s.Degraded))
	}
	return factors
}
