package reconcile_test

import (
	"testing"

	"crosswalk/internal/catalog"
	"crosswalk/internal/match"
	"crosswalk/internal/reconcile"
	"crosswalk/internal/registry"
)

func link(recID, provider, workID, title string, strategy match.Strategy, confidence float64) match.Link {
	return match.Link{
		Recording:  catalog.Recording{ID: recID, Title: title},
		Work:       registry.Composition{ID: workID, Title: title, Provider: provider},
		Strategy:   strategy,
		Confidence: confidence,
	}
}

func TestAggregateDedupsWorksByProviderAndID(t *testing.T) {
	outcomes := []match.Outcome{
		{Recording: catalog.Recording{ID: "t1"}, Links: []match.Link{
			link("t1", "MLC", "w1", "Jump", match.StrategyCodeMatch, 0.95),
			link("t1", "MLC", "w1", "Jump", match.StrategyTextSimilarity, 0.80),
		}},
		{Recording: catalog.Recording{ID: "t2"}, Links: []match.Link{
			link("t2", "MLC", "w1", "Jump", match.StrategyTextSimilarity, 0.78),
			link("t2", "Songview", "w1", "Jump", match.StrategyTextSimilarity, 0.79),
		}},
	}

	result := reconcile.Aggregate(outcomes)

	// Same work ID from two providers stays two canonical works.
	if len(result.Works) != 2 {
		t.Fatalf("expected 2 canonical works, got %d", len(result.Works))
	}
	best := result.Works[0]
	if best.Work.Key() != "MLC/w1" {
		t.Fatalf("expected MLC work first, got %s", best.Work.Key())
	}
	if best.BestLink.Confidence != 0.95 || best.BestLink.Strategy != match.StrategyCodeMatch {
		t.Fatalf("expected the code link as best, got %+v", best.BestLink)
	}
	if len(best.Recordings) != 2 {
		t.Fatalf("expected both recordings linked to MLC/w1, got %d", len(best.Recordings))
	}

	// Raw links keep every row.
	if len(result.Links) != 4 {
		t.Fatalf("expected 4 raw link rows, got %d", len(result.Links))
	}
}

func TestAggregateSortContract(t *testing.T) {
	outcomes := []match.Outcome{
		{Links: []match.Link{
			link("t1", "MLC", "w1", "zebra", match.StrategyTextSimilarity, 0.80),
			link("t1", "MLC", "w2", "Apple", match.StrategyTextSimilarity, 0.80),
			link("t1", "MLC", "w3", "middle", match.StrategyCodeMatch, 0.95),
		}},
	}

	result := reconcile.Aggregate(outcomes)

	gotOrder := []string{}
	for _, entry := range result.Works {
		gotOrder = append(gotOrder, entry.Work.ID)
	}
	// Confidence descending, ties broken by case-insensitive title.
	want := []string{"w3", "w2", "w1"}
	for i := range want {
		if gotOrder[i] != want[i] {
			t.Fatalf("unexpected work order %v, want %v", gotOrder, want)
		}
	}
	if result.Links[0].Work.ID != "w3" || result.Links[1].Work.ID != "w2" {
		t.Fatalf("link rows not sorted: %+v", result.Links)
	}
}

func TestAggregateFlattensContributorsPerWork(t *testing.T) {
	shared := registry.Contributor{Name: "A. Writer", Type: registry.ContributorWriter}
	outcomes := []match.Outcome{
		{Links: []match.Link{
			{
				Recording:  catalog.Recording{ID: "t1"},
				Work:       registry.Composition{ID: "w1", Title: "Jump", Provider: "MLC", Contributors: []registry.Contributor{shared}},
				Strategy:   match.StrategyCodeMatch,
				Confidence: 0.95,
			},
			{
				Recording:  catalog.Recording{ID: "t1"},
				Work:       registry.Composition{ID: "w2", Title: "Panama", Provider: "MLC", Contributors: []registry.Contributor{shared}},
				Strategy:   match.StrategyCodeMatch,
				Confidence: 0.95,
			},
		}},
	}

	result := reconcile.Aggregate(outcomes)
	// No cross-work merge: the same name appears once per work.
	if len(result.Contributors) != 2 {
		t.Fatalf("expected 2 contributor rows, got %d", len(result.Contributors))
	}
	if result.Contributors[0].Work.ID == result.Contributors[1].Work.ID {
		t.Fatal("expected rows for distinct works")
	}
}

func TestAggregateEmptyBatch(t *testing.T) {
	result := reconcile.Aggregate(nil)
	if len(result.Works) != 0 || len(result.Contributors) != 0 || len(result.Links) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
