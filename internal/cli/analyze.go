package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sitescope/internal/clonability"
	"github.com/Dicklesworthstone/sitescope/internal/detect"
	"github.com/Dicklesworthstone/sitescope/internal/market"
	"github.com/Dicklesworthstone/sitescope/internal/output"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		marketPath    string
		estimatesPath string
		jsonOut       bool
		markdownOut   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <report.json>",
		Short: "Run the full clonability assessment for a detection report",
		Long: `Analyze reads a technology detection report (a JSON array of detected
technologies, or an object with a "technologies" field) and produces the
full assessment: complexity, clonability and insights.

Market data (--market) and resource estimates (--estimates) are optional
JSON files; when omitted, the market sub-score degrades to its neutral
default and resource estimates are derived from the generated insights.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			techs, err := detect.LoadReport(args[0])
			if err != nil {
				return err
			}

			var md *market.Data
			if marketPath != "" {
				md, err = market.Load(marketPath)
				if err != nil {
					return fmt.Errorf("reading market data: %w", err)
				}
			}

			var est clonability.ResourceEstimates
			if estimatesPath != "" {
				if err := loadJSON(estimatesPath, &est); err != nil {
					return fmt.Errorf("reading estimates: %w", err)
				}
			}

			a, err := newAnalyzer()
			if err != nil {
				return err
			}
			assessment := a.Run(cmd.Context(), techs, md, est)

			f := newFormatter()
			switch {
			case jsonOut:
				return f.JSON(assessment)
			case markdownOut:
				f.RenderMarkdown(output.Markdown(assessment))
			default:
				f.Assessment(assessment)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&marketPath, "market", "", "market analysis JSON file (SWOT + competitors)")
	cmd.Flags().StringVar(&estimatesPath, "estimates", "", "resource estimates JSON file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the assessment as JSON")
	cmd.Flags().BoolVar(&markdownOut, "markdown", false, "render the assessment as markdown")

	return cmd
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
