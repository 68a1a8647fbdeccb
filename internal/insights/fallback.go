package insights

import (
	"strings"

	"github.com/Dicklesworthstone/sitescope/internal/detect"
)

// skillPatterns drive the degraded skill inference used when full
// generation keeps failing: no catalog lookups, name matching only.
var skillPatterns = []struct {
	patterns    []string
	skill       string
	category    string
	proficiency Proficiency
}{
	{[]string{"react", "vue", "angular", "svelte", "next"}, "Frontend development", "frontend", Intermediate},
	{[]string{"node", "express", "django", "rails", "flask", "laravel", "spring"}, "Backend development", "backend", Intermediate},
	{[]string{"postgres", "mysql", "mongo", "sqlite", "redis"}, "Database administration", "database", Intermediate},
	{[]string{"docker", "kubernetes", "aws", "azure", "gcp", "terraform"}, "Infrastructure & DevOps", "infrastructure", Advanced},
}

// fallbackInsights derives a reduced report from name pattern-matching
// alone. It must not touch the catalog.
func fallbackInsights(techs []detect.Technology, complexityScore int) *TechnologyInsights {
	seen := make(map[string]bool)
	var skills []SkillRequirement
	for _, t := range techs {
		lower := strings.ToLower(t.Name)
		for _, sp := range skillPatterns {
			for _, p := range sp.patterns {
				if strings.Contains(lower, p) {
					key := sp.skill + "|" + sp.category
					if !seen[key] {
						seen[key] = true
						skills = append(skills, SkillRequirement{
							Skill:       sp.skill,
							Category:    sp.category,
							Proficiency: sp.proficiency,
						})
					}
					break
				}
			}
		}
	}

	recs := []Recommendation{
		{
			Title:       "Validate before building",
			Description: "Confirm demand for a clone before committing engineering budget.",
			Priority:    PriorityHigh,
		},
		{
			Title:       "Prefer managed services",
			Description: "Buy commodity capabilities (auth, payments, email, hosting) rather than building them.",
			Priority:    PriorityMedium,
		},
		{
			Title:       "Limited insights available",
			Description: "Detailed analysis was unavailable for this stack; estimates below are derived from complexity alone.",
			Priority:    PriorityLow,
		},
	}

	return &TechnologyInsights{
		Skills:          skills,
		Estimates:       defaultEstimates(complexityScore, len(techs)),
		Recommendations: recs,
		Summary: "Partial analysis: a " + complexityTierWord(complexityScore) +
			"-complexity stack assessed from technology names only.",
	}
}

// defaultEstimates produces complexity-derived estimates without any
// catalog data, shared by the fallback path.
func defaultEstimates(complexityScore, techCount int) ProjectEstimates {
	tier := catalogFreeCostTier(complexityScore)
	firstYear := developmentMins[tierIndex(tier)] +
		12*(infrastructureMins[tierIndex(tier)]+maintenanceMins[tierIndex(tier)])
	return ProjectEstimates{
		Time: timeEstimate(complexityScore, techCount),
		Cost: CostEstimate{
			Development:    developmentRanges[tierIndex(tier)],
			Infrastructure: infrastructureRanges[tierIndex(tier)],
			Maintenance:    maintenanceRanges[tierIndex(tier)],
			Total:          totalBand(firstYear),
		},
		Team: teamSize(nil, complexityScore),
	}
}

// catalogFreeCostTier approximates a cost tier from complexity alone.
func catalogFreeCostTier(complexityScore int) int {
	switch {
	case complexityScore <= 3:
		return 2
	case complexityScore <= 6:
		return 3
	case complexityScore <= 8:
		return 4
	default:
		return 5
	}
}

// minimalInsights is the hard floor of the degradation chain: a fixed,
// always-valid report used when even the fallback generator fails.
func minimalInsights() *TechnologyInsights {
	return &TechnologyInsights{
		Estimates: ProjectEstimates{
			Time: TimeEstimate{Minimum: "8 weeks", Maximum: "26 weeks", Realistic: "17 weeks"},
			Cost: CostEstimate{
				Development:    developmentRanges[tierIndex(3)],
				Infrastructure: infrastructureRanges[tierIndex(3)],
				Maintenance:    maintenanceRanges[tierIndex(3)],
				Total:          "$25,000 - $75,000 first year",
			},
			Team: TeamSize{Minimum: 1, Recommended: 2},
		},
		Recommendations: []Recommendation{{
			Title:       "Insights unavailable",
			Description: "Technology insights could not be generated for this stack; retry later or review the detected technologies manually.",
			Priority:    PriorityHigh,
		}},
		Summary: "Insights are temporarily unavailable; generic estimates are shown.",
	}
}
