package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"crosswalk/internal/logging"
	"crosswalk/internal/opportunity"
)

const summaryRule = "================================================================================"

// Recommendation returns the deal guidance text for an opportunity level.
func Recommendation(level opportunity.Level) string {
	switch level {
	case opportunity.LevelHigh:
		return "STRONG OPPORTUNITY: significant unregistered catalog and no major publisher. Excellent candidate for a publishing deal."
	case opportunity.LevelMedium:
		return "MODERATE OPPORTUNITY: some publishing gaps. Worth investigating for a co-publishing or administration deal."
	default:
		return "LIMITED OPPORTUNITY: catalog appears well represented. May only suit specific territories or future works."
	}
}

// WriteSummary renders the plain-text publishing intelligence report.
func (g *Generator) WriteSummary(meta Meta, summary opportunity.Summary) (string, error) {
	var b strings.Builder

	header(&b, "ARTIST PUBLISHING ANALYSIS")
	fmt.Fprintf(&b, "Artist: %s\n", meta.ArtistName)
	fmt.Fprintf(&b, "Artist ID: %s\n", meta.ArtistID)
	fmt.Fprintf(&b, "Analysis Date: %s\n", meta.GeneratedAt.Format("2006-01-02 15:04:05"))
	if meta.SourceURL != "" {
		fmt.Fprintf(&b, "Source URL: %s\n", meta.SourceURL)
	}
	b.WriteString("\n")

	coveragePct := summary.Coverage * 100
	header(&b, "PUBLISHING COVERAGE")
	fmt.Fprintf(&b, "Total Recordings: %d\n", summary.TotalRecordings)
	fmt.Fprintf(&b, "Registered: %d (%.1f%%)\n", summary.Registered, coveragePct)
	fmt.Fprintf(&b, "Unregistered: %d (%.1f%%)\n", summary.Unregistered, 100-coveragePct)
	if summary.Degraded > 0 {
		fmt.Fprintf(&b, "Degraded (provider failures): %d\n", summary.Degraded)
	}
	b.WriteString("\nCoverage:\n")
	fmt.Fprintf(&b, "[%s] %.1f%%\n\n", coverageBar(summary.Coverage), coveragePct)
	if summary.TotalRecordings > 0 && summary.Unregistered*2 > summary.TotalRecordings {
		fmt.Fprintf(&b, "SIGNIFICANT GAP: %.0f%% of catalog unregistered\n\n", 100-coveragePct)
	}

	header(&b, "PUBLISHER ANALYSIS")
	if len(summary.Publishers) > 0 {
		b.WriteString("Current Publishers:\n")
		for i, pub := range summary.Publishers {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "  - %s: %d work(s)\n", pub.Name, pub.Works)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No publishers found in registries\n\n")
	}
	fmt.Fprintf(&b, "Has Major Publisher: %s\n", yesNo(summary.HasMajor))
	fmt.Fprintf(&b, "Has Indie Publisher: %s\n", yesNo(summary.HasIndie))
	fmt.Fprintf(&b, "Self-Published/Unrepresented: %s\n\n", yesNo(summary.SelfPublished))

	header(&b, "OPPORTUNITY ASSESSMENT")
	fmt.Fprintf(&b, "Opportunity Score: %d/100\n", summary.Score)
	fmt.Fprintf(&b, "Opportunity Level: %s\n\n", summary.Level)
	fmt.Fprintf(&b, "Recommendation:\n%s\n\n", Recommendation(summary.Level))

	if len(summary.KeyFactors) > 0 {
		b.WriteString("Key Factors:\n")
		for _, factor := range summary.KeyFactors {
			fmt.Fprintf(&b, "  - %s\n", factor)
		}
		b.WriteString("\n")
	}

	b.WriteString(summaryRule + "\n")

	path := filepath.Join(g.dir, SummaryFile)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", SummaryFile, err)
	}
	g.logger.Info("wrote publishing summary", logging.String("path", path), logging.String("level", string(summary.Level)))
	return path, nil
}

func header(b *strings.Builder, title string) {
	b.WriteString(summaryRule + "\n")
	b.WriteString("  " + title + "\n")
	b.WriteString(summaryRule + "\n\n")
}

// coverageBar renders a 20-segment bar, one segment per 5% of coverage.
func coverageBar(coverage float64) string {
	filled := int(coverage * 20)
	if filled < 0 {
		filled = 0
	}
	if filled > 20 {
		filled = 20
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", 20-filled)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
