package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"crosswalk/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigPathCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if err := config.WriteSample(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set spotify client_id and client_secret (or export SPOTIFY_CLIENT_ID / SPOTIFY_CLIENT_SECRET) before analyzing.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := [][]string{
				{"output_dir", cfg.OutputDir},
				{"log_level", cfg.LogLevel},
				{"log_format", cfg.LogFormat},
				{"spotify.client_id", maskSecret(cfg.Spotify.ClientID)},
				{"spotify.client_secret", maskSecret(cfg.Spotify.ClientSecret)},
				{"mlc.base_url", cfg.MLC.BaseURL},
				{"mlc.page_size", fmt.Sprintf("%d", cfg.MLC.PageSize)},
				{"mlc.max_retries", fmt.Sprintf("%d", cfg.MLC.MaxRetries)},
				{"songview.enabled", fmt.Sprintf("%t", cfg.Songview.Enabled)},
				{"matching.similarity_threshold", fmt.Sprintf("%.2f", cfg.Matching.SimilarityThreshold)},
				{"matching.code_match_confidence", fmt.Sprintf("%.2f", cfg.Matching.CodeMatchConfidence)},
				{"matching.text_match_cap", fmt.Sprintf("%.2f", cfg.Matching.TextMatchCap)},
				{"matching.concurrency", fmt.Sprintf("%d", cfg.Matching.Concurrency)},
				{"opportunity.high_threshold", fmt.Sprintf("%d", cfg.Opportunity.HighThreshold)},
				{"opportunity.medium_threshold", fmt.Sprintf("%d", cfg.Opportunity.MediumThreshold)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Setting", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func newConfigPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ctx.configPath)
			return nil
		},
	}
}

func maskSecret(value string) string {
	if value == "" {
		return "(unset)"
	}
	if len(value) <= 4 {
		return "****"
	}
	return value[:4] + strings.Repeat("*", len(value)-4)
}
