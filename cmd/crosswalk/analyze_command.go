package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"crosswalk/internal/run"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "analyze [artist-url-or-id]",
		Short: "Analyze one artist's catalog against works registries",
		Long: `Analyze fetches an artist's full catalog from the streaming API (or reads
a local catalog export with --input), matches every recording against the
configured works registries, and writes the CSV and summary reports.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := run.Source{InputFile: strings.TrimSpace(inputFile)}
			if len(args) > 0 {
				source.ArtistInput = strings.TrimSpace(args[0])
			}
			if source.ArtistInput == "" && source.InputFile == "" {
				return errors.New("provide an artist URL/ID or --input catalog file")
			}

			result, err := executeRun(cmd, ctx, source)
			if err != nil {
				return err
			}
			renderRunSummary(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Local catalog export (JSON) to analyze instead of fetching")
	return cmd
}

func executeRun(cmd *cobra.Command, ctx *commandContext, source run.Source) (*run.Result, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return nil, err
	}
	runner, err := run.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return runner.Execute(cmd.Context(), source)
}
