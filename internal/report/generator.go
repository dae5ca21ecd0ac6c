package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crosswalk/internal/logging"
	"crosswalk/internal/match"
	"crosswalk/internal/opportunity"
	"crosswalk/internal/reconcile"
	"crosswalk/internal/registry"
)

// Artifact file names written into the run output directory.
const (
	MatchedWorksFile      = "matched_works.csv"
	ContributorsFile      = "contributors.csv"
	IdentifiersFile       = "identifiers.csv"
	ComprehensiveFile     = "COMPREHENSIVE_REPORT.csv"
	UnregisteredFile      = "unregistered_tracks.csv"
	PublisherAnalysisFile = "publisher_analysis.csv"
	SummaryFile           = "PUBLISHING_SUMMARY.txt"
)

// Registration status values in the comprehensive report.
const (
	StatusRegistered   = "REGISTERED"
	StatusUnregistered = "UNREGISTERED"
	StatusDegraded     = "DEGRADED"
)

// Meta carries run identity rendered into the summary header.
type Meta struct {
	ArtistName  string
	ArtistID    string
	SourceURL   string
	GeneratedAt time.Time
}

// Generator writes report artifacts into a single output directory.
type Generator struct {
	dir    string
	logger *slog.Logger
}

// NewGenerator returns a generator rooted at dir. The directory must already
// exist; run orchestration owns its creation.
func NewGenerator(dir string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{dir: dir, logger: logger}
}

// WriteAll renders every artifact for one run and returns the paths written.
func (g *Generator) WriteAll(meta Meta, outcomes []match.Outcome, agg reconcile.Result, summary opportunity.Summary) ([]string, error) {
	writers := []func() (string, error){
		func() (string, error) { return g.WriteComprehensive(outcomes, agg) },
		func() (string, error) { return g.WriteMatchedWorks(agg) },
		func() (string, error) { return g.WriteContributors(agg) },
		func() (string, error) { return g.WriteIdentifiers(agg) },
		func() (string, error) { return g.WriteUnregistered(outcomes) },
		func() (string, error) { return g.WritePublisherAnalysis(summary) },
		func() (string, error) { return g.WriteSummary(meta, summary) },
	}

	var paths []string
	for _, write := range writers {
		path, err := write()
		if err != nil {
			return paths, err
		}
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// WriteMatchedWorks exports one row per canonical work, carrying its
// best link.
func (g *Generator) WriteMatchedWorks(agg reconcile.Result) (string, error) {
	path := filepath.Join(g.dir, MatchedWorksFile)
	rows := [][]string{{
		"Work ID", "Work Title", "Source", "ISWC",
		"Track ID", "Track Title", "ISRC",
		"Confidence Score", "Match Method", "Notes",
	}}
	for _, work := range agg.Works {
		link := work.BestLink
		rows = append(rows, []string{
			work.Work.ID,
			work.Work.Title,
			work.Work.Provider,
			work.Work.ISWC,
			link.Recording.ID,
			link.Recording.Title,
			link.Recording.ISRC,
			formatConfidence(link.Confidence),
			string(link.Strategy),
			link.Notes,
		})
	}
	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	g.logger.Info("wrote matched works report", logging.String("path", path), logging.Int("works", len(agg.Works)))
	return path, nil
}

// WriteContributors exports the flattened (work, contributor) rows.
func (g *Generator) WriteContributors(agg reconcile.Result) (string, error) {
	path := filepath.Join(g.dir, ContributorsFile)
	rows := [][]string{{
		"Work ID", "Work Title", "Contributor Name", "Contributor Type",
		"Role", "Share %", "IPI Number", "PRO",
	}}
	for _, row := range agg.Contributors {
		share := ""
		if row.Contributor.SharePercent != nil {
			share = fmt.Sprintf("%.2f", *row.Contributor.SharePercent)
		}
		rows = append(rows, []string{
			row.Work.ID,
			row.Work.Title,
			row.Contributor.Name,
			string(row.Contributor.Type),
			row.Contributor.Role,
			share,
			row.Contributor.IPI,
			row.Contributor.PRO,
		})
	}
	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	g.logger.Info("wrote contributors report", logging.String("path", path), logging.Int("contributors", len(agg.Contributors)))
	return path, nil
}

// WriteIdentifiers exports every raw recording-to-work link.
func (g *Generator) WriteIdentifiers(agg reconcile.Result) (string, error) {
	path := filepath.Join(g.dir, IdentifiersFile)
	rows := [][]string{{
		"Track ID", "Track Title", "ISRC",
		"Work ID", "Work Title", "ISWC", "Source",
		"Confidence Score", "Match Method",
	}}
	for _, link := range agg.Links {
		rows = append(rows, []string{
			link.Recording.ID,
			link.Recording.Title,
			link.Recording.ISRC,
			link.Work.ID,
			link.Work.Title,
			link.Work.ISWC,
			link.Work.Provider,
			formatConfidence(link.Confidence),
			string(link.Strategy),
		})
	}
	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	g.logger.Info("wrote identifiers report", logging.String("path", path), logging.Int("links", len(agg.Links)))
	return path, nil
}

// WriteComprehensive exports one row per (recording, link) pair, or a single
// status row for recordings without links. Degraded recordings are marked
// distinctly from recordings that were checked and simply had no match.
func (g *Generator) WriteComprehensive(outcomes []match.Outcome, agg reconcile.Result) (string, error) {
	path := filepath.Join(g.dir, ComprehensiveFile)

	writersByKey := map[string]string{}
	publishersByKey := map[string]string{}
	for _, work := range agg.Works {
		writersByKey[work.Work.Key()] = joinNames(work.Work.Writers())
		publishersByKey[work.Work.Key()] = joinNames(work.Work.Publishers())
	}

	rows := [][]string{{
		"Track ID", "Track Title", "Artists", "Album", "ISRC",
		"Release Date", "Duration (ms)",
		"Work ID", "Work Title", "ISWC", "Source",
		"Writers", "Publishers",
		"Confidence Score", "Match Method", "Registration Status",
	}}
	for _, outcome := range outcomes {
		rec := outcome.Recording
		if !outcome.Registered() {
			status := StatusUnregistered
			if outcome.Failed {
				status = StatusDegraded
			}
			rows = append(rows, []string{
				rec.ID, rec.Title, rec.ArtistList(), rec.Album, rec.ISRC,
				rec.ReleaseDate, fmt.Sprintf("%d", rec.DurationMS),
				"", "", "", "", "", "", "", "", status,
			})
			continue
		}
		for _, link := range outcome.Links {
			key := link.Work.Key()
			rows = append(rows, []string{
				rec.ID, rec.Title, rec.ArtistList(), rec.Album, rec.ISRC,
				rec.ReleaseDate, fmt.Sprintf("%d", rec.DurationMS),
				link.Work.ID, link.Work.Title, link.Work.ISWC, link.Work.Provider,
				writersByKey[key], publishersByKey[key],
				formatConfidence(link.Confidence), string(link.Strategy), StatusRegistered,
			})
		}
	}
	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	g.logger.Info("wrote comprehensive report", logging.String("path", path), logging.Int("recordings", len(outcomes)))
	return path, nil
}

// WriteUnregistered exports the recordings without a single link. Recordings
// carrying an industry code are flagged high priority since they can be
// re-checked cheaply. Returns an empty path when everything is registered.
func (g *Generator) WriteUnregistered(outcomes []match.Outcome) (string, error) {
	rows := [][]string{{"Track Title", "ISRC", "Release Date", "Album", "Artists", "Priority"}}
	for _, outcome := range outcomes {
		if outcome.Registered() {
			continue
		}
		rec := outcome.Recording
		priority := "MEDIUM"
		if rec.ISRC != "" {
			priority = "HIGH"
		}
		rows = append(rows, []string{
			rec.Title, rec.ISRC, rec.ReleaseDate, rec.Album, rec.ArtistList(), priority,
		})
	}
	if len(rows) == 1 {
		return "", nil
	}

	path := filepath.Join(g.dir, UnregisteredFile)
	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	g.logger.Info("wrote unregistered tracks report", logging.String("path", path), logging.Int("tracks", len(rows)-1))
	return path, nil
}

// WritePublisherAnalysis exports the publisher breakdown with each
// publisher's share of total publisher appearances. Returns an empty path
// when no publisher appeared at all.
func (g *Generator) WritePublisherAnalysis(summary opportunity.Summary) (string, error) {
	if len(summary.Publishers) == 0 {
		return "", nil
	}

	total := 0
	for _, pub := range summary.Publishers {
		total += pub.Works
	}

	rows := [][]string{{"Publisher Name", "Work Count", "Percentage", "Type"}}
	for _, pub := range summary.Publishers {
		pct := 0.0
		if total > 0 {
			pct = float64(pub.Works) / float64(total) * 100
		}
		kind := "Indie"
		if pub.Major {
			kind = "Major"
		}
		rows = append(rows, []string{
			pub.Name,
			fmt.Sprintf("%d", pub.Works),
			fmt.Sprintf("%.1f%%", pct),
			kind,
		})
	}

	path := filepath.Join(g.dir, PublisherAnalysisFile)
	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	g.logger.Info("wrote publisher analysis", logging.String("path", path), logging.Int("publishers", len(summary.Publishers)))
	return path, nil
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}

func formatConfidence(confidence float64) string {
	return fmt.Sprintf("%.2f%%", confidence*100)
}

func joinNames(contributors []registry.Contributor) string {
	names := make([]string, 0, len(contributors))
	for _, contributor := range contributors {
		if contributor.Name != "" {
			names = append(names, contributor.Name)
		}
	}
	return strings.Join(names, ", ")
}
