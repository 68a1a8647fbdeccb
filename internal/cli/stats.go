package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var (
		jsonOut bool
		warm    bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show insights cache and pipeline performance statistics",
		Long: `Stats builds the pipeline, optionally warms the insights cache with
common technology stacks, and prints the cache counters and rolling
performance statistics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAnalyzer()
			if err != nil {
				return err
			}

			if warm {
				a.StartSweeper(cmd.Context(), cfg.SweepInterval())
				a.WarmCache(cmd.Context())
			}

			cache := a.CacheStats()
			perf := a.MonitorStats()

			f := newFormatter()
			if jsonOut {
				return f.JSON(map[string]any{
					"cache":       cache,
					"performance": perf,
				})
			}

			f.Title("Pipeline Statistics")

			f.Section("Insights Cache")
			f.Field("Size", "%d", cache.Size)
			f.Field("Hits", "%d", cache.Hits)
			f.Field("Misses", "%d", cache.Misses)
			f.Field("Evictions", "%d", cache.Evictions)

			f.Section("Performance")
			f.Field("Samples", "%d", perf.Samples)
			f.Field("Success rate", "%.0f%%", perf.SuccessRate*100)
			f.Field("Fallback rate", "%.0f%%", perf.FallbackRate*100)
			f.Field("Avg duration", "%s", perf.AvgDuration)
			f.Field("Slow ops", "%d", perf.SlowCount)

			if !warm {
				f.Line()
				f.Muted(fmt.Sprintf("Run %q to exercise the pipeline first.", "sitescope stats --warm"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit statistics as JSON")
	cmd.Flags().BoolVar(&warm, "warm", false, "warm the cache with common stacks before reporting")
	return cmd
}
