package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sitescope/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "catalog [name]",
		Short: "Browse the technology profile catalog",
		Long: `Without arguments, catalog lists every category and its technologies.
With a name, it shows the full profile, using the same fuzzy lookup the
scoring pipeline uses ("Next.js 13.4" resolves to Next.js).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.New(cfg.CatalogPath)
			if err := cat.Load(); err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			f := newFormatter()
			if len(args) == 0 {
				if jsonOut {
					return f.JSON(catalogListing(cat))
				}
				f.Title("Technology Catalog (%d profiles)", cat.Size())
				t := f.NewTable("Category", "Technologies")
				for _, c := range cat.Categories() {
					var names []string
					for _, p := range cat.TechnologiesByCategory(c) {
						names = append(names, p.Name)
					}
					t.AddRow(c, strings.Join(names, ", "))
				}
				t.Render()
				return nil
			}

			profile, ok := cat.Technology(args[0])
			if !ok {
				return fmt.Errorf("no catalog profile matches %q", args[0])
			}
			if jsonOut {
				return f.JSON(profile)
			}

			f.Title("%s", profile.Name)
			f.Field("Category", "%s", profile.Category)
			f.Field("Difficulty", "%s", profile.Difficulty)
			f.Field("Development", "%s", profile.CostEstimate.Development)
			f.Field("Hosting", "%s", profile.CostEstimate.Hosting)
			f.Field("Maintenance", "%s", profile.CostEstimate.Maintenance)
			if profile.MarketDemand != "" {
				f.Field("Market demand", "%s", profile.MarketDemand)
			}
			if len(profile.Alternatives) > 0 {
				f.Field("Alternatives", "%s", strings.Join(profile.Alternatives, ", "))
			}
			if len(profile.SaaSAlternatives) > 0 {
				f.Field("SaaS options", "%s", strings.Join(profile.SaaSAlternatives, ", "))
			}
			if profile.Description != "" {
				f.Line()
				f.Wrapped(profile.Description)
			}
			if profile.TypicalUseCase != "" {
				f.Field("Typical use", "%s", profile.TypicalUseCase)
			}
			for _, r := range profile.LearningResources {
				f.Muted("  %s", r)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit catalog data as JSON")
	return cmd
}

func catalogListing(cat *catalog.Catalog) map[string][]string {
	out := make(map[string][]string)
	for _, c := range cat.Categories() {
		for _, p := range cat.TechnologiesByCategory(c) {
			out[c] = append(out[c], p.Name)
		}
	}
	return out
}
