package reconcile

import (
	"sort"
	"strings"

	"crosswalk/internal/catalog"
	"crosswalk/internal/match"
	"crosswalk/internal/registry"
)

// CanonicalWork is one deduplicated composition across the whole batch,
// carrying the highest-confidence link that referenced it and every
// recording linked to it.
type CanonicalWork struct {
	Work       registry.Composition
	BestLink   match.Link
	Recordings []catalog.Recording
}

// ContributorRow is one flattened (work, contributor) pair. Contributors are
// never merged across works; each pair is a distinct row.
type ContributorRow struct {
	Work        registry.Composition
	Contributor registry.Contributor
}

// Result is the aggregate view the analyzer and report writers consume.
// Works are deduplicated by (provider, work ID); Links are the raw link rows
// with no dedup applied.
type Result struct {
	Works        []CanonicalWork
	Contributors []ContributorRow
	Links        []match.Link
}

// Aggregate merges per-recording link lists into the canonical work set,
// the flattened contributor set, and the ordered raw link set. Ordering is
// confidence descending, then work title ascending case-insensitively, so
// identical inputs reproduce identical output.
func Aggregate(outcomes []match.Outcome) Result {
	var links []match.Link
	byKey := map[string]*CanonicalWork{}
	var keyOrder []string
	linkedRecordings := map[string]map[string]bool{}

	for _, outcome := range outcomes {
		for _, link := range outcome.Links {
			links = append(links, link)

			key := link.Work.Key()
			entry, ok := byKey[key]
			if !ok {
				entry = &CanonicalWork{Work: link.Work, BestLink: link}
				byKey[key] = entry
				keyOrder = append(keyOrder, key)
				linkedRecordings[key] = map[string]bool{}
			}
			if link.Confidence > entry.BestLink.Confidence {
				entry.BestLink = link
			}
			if !linkedRecordings[key][link.Recording.ID] {
				linkedRecordings[key][link.Recording.ID] = true
				entry.Recordings = append(entry.Recordings, link.Recording)
			}
		}
	}

	works := make([]CanonicalWork, 0, len(keyOrder))
	for _, key := range keyOrder {
		works = append(works, *byKey[key])
	}
	sort.SliceStable(works, func(i, j int) bool {
		if works[i].BestLink.Confidence != works[j].BestLink.Confidence {
			return works[i].BestLink.Confidence > works[j].BestLink.Confidence
		}
		return lessTitle(works[i].Work.Title, works[j].Work.Title)
	})

	contributors := make([]ContributorRow, 0)
	for _, entry := range works {
		for _, contrib := range entry.Work.Contributors {
			contributors = append(contributors, ContributorRow{Work: entry.Work, Contributor: contrib})
		}
	}

	sort.SliceStable(links, func(i, j int) bool {
		if links[i].Confidence != links[j].Confidence {
			return links[i].Confidence > links[j].Confidence
		}
		return lessTitle(links[i].Work.Title, links[j].Work.Title)
	})

	return Result{Works: works, Contributors: contributors, Links: links}
}

func lessTitle(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
