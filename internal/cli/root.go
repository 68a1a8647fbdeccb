// Package cli implements the sitescope command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sitescope/internal/analyzer"
	"github.com/Dicklesworthstone/sitescope/internal/config"
	"github.com/Dicklesworthstone/sitescope/internal/output"
)

var (
	cfgFile string
	cfg     *config.Config
	Version = "dev" // Set by goreleaser
)

var rootCmd = &cobra.Command{
	Use:   "sitescope",
	Short: "Score how hard a website's technology stack is to clone",
	Long: `Sitescope turns a technology detection report into a clonability
assessment: a complexity score, a weighted clonability score and an
actionable insights report with build-vs-buy guidance, skills and
time/cost/team estimates.

Quick Start:
  sitescope analyze report.json             # Full assessment
  sitescope analyze report.json --json      # Machine-readable output
  sitescope insights report.json            # Insights report only
  sitescope catalog react                   # Inspect a technology profile`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "completion" {
			return nil
		}

		// A missing config file means defaults; a malformed one is an
		// error the user needs to see.
		var err error
		cfg, err = config.LoadOrDefault(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/sitescope/config.toml)")

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newInsightsCmd(),
		newCatalogCmd(),
		newStatsCmd(),
		newVersionCmd(),
		newConfigCmd(),
	)
}

// newLogger builds the process logger; warnings go to stderr so they
// never mix with report output.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

func newAnalyzer() (*analyzer.Analyzer, error) {
	return analyzer.New(cfg, newLogger())
}

func newFormatter() *output.Formatter {
	return output.NewFormatter(os.Stdout, cfg.Output.Color)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sitescope version %s\n", Version)
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefault()
			if err != nil {
				return err
			}
			fmt.Printf("Created config file: %s\n", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.DefaultPath())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Print(cfg, os.Stdout)
		},
	})

	return cmd
}
