package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"crosswalk/internal/logging"
	"crosswalk/internal/run"
)

type batchEntry struct {
	input     string
	outputDir string
	err       error
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <artists-file>",
		Short: "Analyze multiple artists from a file, one per line",
		Long: `Batch reads artist URLs or IDs from a text file, one per line, and runs
a full analysis for each. Blank lines and lines starting with # are
skipped. A failure on one artist does not stop the rest; the batch
summary reports each outcome.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readArtistsFile(args[0])
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no artist entries found in %s", args[0])
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			runner, err := run.New(cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			entries := make([]batchEntry, 0, len(inputs))
			succeeded := 0
			for i, input := range inputs {
				fmt.Fprintf(out, "Processing artist %d/%d: %s\n", i+1, len(inputs), input)

				result, err := runner.Execute(cmd.Context(), run.Source{ArtistInput: input})
				entry := batchEntry{input: input, err: err}
				if err != nil {
					logger.Error("batch entry failed", logging.String("input", input), logging.Error(err))
					fmt.Fprintf(out, "  failed: %v\n", err)
				} else {
					entry.outputDir = result.OutputDir
					succeeded++
					fmt.Fprintf(out, "  %s: score %d/100 (%s)\n",
						result.Batch.ArtistName, result.Summary.Score, result.Summary.Level)
				}
				entries = append(entries, entry)
			}

			summaryPath, err := writeBatchSummary(cfg.OutputDir, entries, succeeded)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nBatch complete: %d/%d succeeded\n", succeeded, len(entries))
			fmt.Fprintf(out, "Summary written to %s\n", summaryPath)
			if succeeded < len(entries) {
				return fmt.Errorf("%d of %d artists failed", len(entries)-succeeded, len(entries))
			}
			return nil
		},
	}
	return cmd
}

func readArtistsFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artists file: %w", err)
	}
	defer file.Close()

	var inputs []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read artists file: %w", err)
	}
	return inputs, nil
}

func writeBatchSummary(outputRoot string, entries []batchEntry, succeeded int) (string, error) {
	var b strings.Builder
	b.WriteString("Batch Processing Summary\n")
	b.WriteString(strings.Repeat("=", 80) + "\n\n")
	fmt.Fprintf(&b, "Total artists: %d\n", len(entries))
	fmt.Fprintf(&b, "Successful: %d\n", succeeded)
	fmt.Fprintf(&b, "Failed: %d\n\n", len(entries)-succeeded)

	b.WriteString("Results:\n")
	b.WriteString(strings.Repeat("-", 80) + "\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "\nInput: %s\n", entry.input)
		if entry.err != nil {
			fmt.Fprintf(&b, "Status: failed\nError: %v\n", entry.err)
			continue
		}
		fmt.Fprintf(&b, "Status: success\nOutput: %s\n", entry.outputDir)
	}

	path := filepath.Join(outputRoot, "batch_summary.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write batch summary: %w", err)
	}
	return path, nil
}
