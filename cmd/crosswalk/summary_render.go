package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"crosswalk/internal/opportunity"
	"crosswalk/internal/run"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func levelColor(level opportunity.Level) string {
	switch level {
	case opportunity.LevelHigh:
		return ansiGreen
	case opportunity.LevelMedium:
		return ansiYellow
	default:
		return ansiRed
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

// renderRunSummary prints the per-run console summary after reports are
// written.
func renderRunSummary(out io.Writer, result *run.Result) {
	colorize := shouldColorize(out)
	summary := result.Summary

	for _, line := range renderSectionHeader("Publishing Analysis: "+result.Batch.ArtistName, colorize) {
		fmt.Fprintln(out, line)
	}

	coverageRows := [][]string{
		{"Total recordings", fmt.Sprintf("%d", summary.TotalRecordings)},
		{"Registered", fmt.Sprintf("%d (%.1f%%)", summary.Registered, summary.Coverage*100)},
		{"Unregistered", fmt.Sprintf("%d", summary.Unregistered)},
		{"Canonical works", fmt.Sprintf("%d", len(result.Aggregate.Works))},
	}
	if summary.Degraded > 0 {
		coverageRows = append(coverageRows, []string{"Degraded", fmt.Sprintf("%d", summary.Degraded)})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Coverage", "Value"},
		coverageRows,
		[]columnAlignment{alignLeft, alignRight},
	))

	if len(summary.Publishers) > 0 {
		pubRows := make([][]string, 0, len(summary.Publishers))
		for i, pub := range summary.Publishers {
			if i >= 10 {
				break
			}
			kind := "Indie"
			if pub.Major {
				kind = "Major"
			}
			pubRows = append(pubRows, []string{pub.Name, fmt.Sprintf("%d", pub.Works), kind})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Publisher", "Works", "Type"},
			pubRows,
			[]columnAlignment{alignLeft, alignRight, alignLeft},
		))
	}

	levelText := string(summary.Level)
	if colorize {
		levelText = levelColor(summary.Level) + levelText + ansiReset
	}
	fmt.Fprintf(out, "Opportunity: %d/100 (%s)\n", summary.Score, levelText)
	for _, factor := range summary.KeyFactors {
		fmt.Fprintf(out, "  - %s\n", factor)
	}
	fmt.Fprintf(out, "\nReports written to %s\n", result.OutputDir)
}
