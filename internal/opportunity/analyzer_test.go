package opportunity_test

import (
	"math"
	"testing"

	"crosswalk/internal/catalog"
	"crosswalk/internal/match"
	"crosswalk/internal/opportunity"
	"crosswalk/internal/reconcile"
	"crosswalk/internal/registry"
	"crosswalk/internal/services"
)

func newAnalyzer(t *testing.T) *opportunity.Analyzer {
	t.Helper()
	analyzer, err := opportunity.NewAnalyzer(opportunity.DefaultWeights(), nil)
	if err != nil {
		t.Fatalf("NewAnalyzer returned error: %v", err)
	}
	return analyzer
}

func outcomes(total, registered int) []match.Outcome {
	out := make([]match.Outcome, 0, total)
	for i := 0; i < total; i++ {
		outcome := match.Outcome{Recording: catalog.Recording{ID: "t", Title: "x"}}
		if i < registered {
			outcome.Links = []match.Link{{
				Work:       registry.Composition{ID: "w", Title: "x", Provider: "MLC"},
				Strategy:   match.StrategyCodeMatch,
				Confidence: 0.95,
			}}
		}
		out = append(out, outcome)
	}
	return out
}

func TestAnalyzeScoresLargeUnrepresentedCatalogHigh(t *testing.T) {
	analyzer := newAnalyzer(t)

	// 110 recordings, 36 registered, no publishers anywhere: coverage band
	// +30, no major +30, no indie +10, self-published +10, catalog +20,
	// clamped to 100.
	summary := analyzer.Analyze(outcomes(110, 36), reconcile.Result{})

	if math.Abs(summary.Coverage-36.0/110.0) > 1e-9 {
		t.Fatalf("unexpected coverage %f", summary.Coverage)
	}
	if summary.Score != 100 {
		t.Fatalf("expected score 100, got %d", summary.Score)
	}
	if summary.Level != opportunity.LevelHigh {
		t.Fatalf("expected HIGH, got %s", summary.Level)
	}
	if !summary.SelfPublished {
		t.Fatal("expected self-published signal with no publisher rows")
	}
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	analyzer := newAnalyzer(t)
	summary := analyzer.Analyze(nil, reconcile.Result{})

	if summary.Coverage != 0 {
		t.Fatalf("expected coverage 0.0, got %f", summary.Coverage)
	}
	// No coverage band for an empty batch: no major +30, no indie +10,
	// self-published +10, catalog base +10.
	if summary.Score != 60 {
		t.Fatalf("expected score 60, got %d", summary.Score)
	}
	if summary.Level != opportunity.LevelLow {
		t.Fatalf("expected LOW for empty batch, got %s", summary.Level)
	}
}

func publisherResult(names ...string) reconcile.Result {
	work := registry.Composition{ID: "w1", Title: "Jump", Provider: "MLC"}
	var rows []reconcile.ContributorRow
	for _, name := range names {
		rows = append(rows, reconcile.ContributorRow{
			Work:        work,
			Contributor: registry.Contributor{Name: name, Type: registry.ContributorPublisher},
		})
	}
	return reconcile.Result{Contributors: rows}
}

func TestAnalyzePublisherClassification(t *testing.T) {
	analyzer := newAnalyzer(t)

	summary := analyzer.Analyze(outcomes(10, 8), publisherResult(
		"SONY MUSIC PUBLISHING (US) LLC",
		"Black 17 Publishing",
	))
	if !summary.HasMajor {
		t.Fatal("expected substring match against major list")
	}
	if !summary.HasIndie {
		t.Fatal("expected indie classification for unknown publisher")
	}
	if summary.SelfPublished {
		t.Fatal("publishers present, must not be self-published")
	}
	if len(summary.Publishers) != 2 {
		t.Fatalf("expected 2 publisher counts, got %d", len(summary.Publishers))
	}
}

func TestAnalyzeWriterRowsAreNotPublishers(t *testing.T) {
	analyzer := newAnalyzer(t)
	agg := reconcile.Result{Contributors: []reconcile.ContributorRow{{
		Work:        registry.Composition{ID: "w1", Provider: "MLC"},
		Contributor: registry.Contributor{Name: "A. Writer", Type: registry.ContributorWriter},
	}}}
	summary := analyzer.Analyze(outcomes(5, 5), agg)
	if !summary.SelfPublished {
		t.Fatal("writer-only works count as unrepresented")
	}
}

func TestScoreBoundsAndLevelBands(t *testing.T) {
	analyzer := newAnalyzer(t)

	// Full coverage with a major and an indie publisher: +10 coverage,
	// +0 representation, +10 catalog = 20 -> LOW.
	summary := analyzer.Analyze(outcomes(5, 5), publisherResult("SONY", "Tiny Pub"))
	if summary.Score != 20 {
		t.Fatalf("expected score 20, got %d", summary.Score)
	}
	if summary.Level != opportunity.LevelLow {
		t.Fatalf("expected LOW, got %s", summary.Level)
	}

	// Half coverage, major only: +30 coverage, +10 no-indie, +10 catalog = 50 -> MEDIUM.
	summary = analyzer.Analyze(outcomes(10, 4), publisherResult("UNIVERSAL"))
	if summary.Score != 50 {
		t.Fatalf("expected score 50, got %d", summary.Score)
	}
	if summary.Level != opportunity.LevelMedium {
		t.Fatalf("expected MEDIUM, got %s", summary.Level)
	}
}

func TestNewAnalyzerRejectsBadWeights(t *testing.T) {
	weights := opportunity.DefaultWeights()
	weights.Coverage.Under25 = -5
	if _, err := opportunity.NewAnalyzer(weights, nil); err == nil {
		t.Fatal("expected configuration error for negative weight")
	} else if !services.Fatal(err) {
		t.Fatalf("expected fatal error, got %v", err)
	}

	weights = opportunity.DefaultWeights()
	weights.MediumThreshold = 90
	if _, err := opportunity.NewAnalyzer(weights, nil); err == nil {
		t.Fatal("expected configuration error for unordered thresholds")
	}
}

func TestCoverageMonotonicity(t *testing.T) {
	analyzer := newAnalyzer(t)
	prev := -1.0
	for registered := 0; registered <= 10; registered++ {
		summary := analyzer.Analyze(outcomes(10, registered), reconcile.Result{})
		if summary.Coverage < prev {
			t.Fatalf("coverage decreased at %d registered", registered)
		}
		if summary.Coverage < 0 || summary.Coverage > 1 {
			t.Fatalf("coverage out of bounds: %f", summary.Coverage)
		}
		prev = summary.Coverage
	}
}
