package cli

import (
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sitescope/internal/detect"
)

func newInsightsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "insights <report.json>",
		Short: "Generate the insights report only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			techs, err := detect.LoadReport(args[0])
			if err != nil {
				return err
			}

			a, err := newAnalyzer()
			if err != nil {
				return err
			}
			ins := a.Insights(cmd.Context(), techs)

			f := newFormatter()
			if jsonOut {
				return f.JSON(ins)
			}
			f.Title("Technology Insights")
			f.Insights(ins)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the insights as JSON")
	return cmd
}
