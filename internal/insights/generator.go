package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Dicklesworthstone/sitescope/internal/catalog"
	"github.com/Dicklesworthstone/sitescope/internal/detect"
)

// generator builds the full insights report from catalog data. All of its
// methods are pure functions of the catalog plus the input list.
type generator struct {
	catalog *catalog.Catalog
}

func (g *generator) generate(techs []detect.Technology, complexityScore int) *TechnologyInsights {
	resolved := g.resolveProfiles(techs)

	bvb := buildVsBuy(resolved)
	skills := skillRequirements(resolved)
	estimates := projectEstimates(resolved, len(techs), complexityScore)
	recs := recommendations(complexityScore, bvb, skills)

	return &TechnologyInsights{
		Alternatives:    alternatives(resolved),
		BuildVsBuy:      bvb,
		Skills:          skills,
		Estimates:       estimates,
		Recommendations: recs,
		Summary:         summary(complexityScore, len(techs), recs),
	}
}

// resolvedTech pairs a detected technology with its catalog profile.
// Found is false when the profile is a synthesized fallback.
type resolvedTech struct {
	tech    detect.Technology
	profile catalog.TechnologyProfile
	found   bool
}

func (g *generator) resolveProfiles(techs []detect.Technology) []resolvedTech {
	out := make([]resolvedTech, 0, len(techs))
	for _, t := range techs {
		p, ok := g.catalog.Technology(t.Name)
		if !ok {
			cat := ""
			if len(t.Categories) > 0 {
				cat = t.Categories[0]
			}
			p = g.catalog.FallbackProfile(t.Name, cat)
		}
		out = append(out, resolvedTech{tech: t, profile: p, found: ok})
	}
	return out
}

// alternatives maps each cataloged technology to its alternatives list,
// omitting technologies with nothing to suggest.
func alternatives(resolved []resolvedTech) map[string][]string {
	out := make(map[string][]string)
	for _, r := range resolved {
		if r.found && len(r.profile.Alternatives) > 0 {
			out[r.tech.Name] = r.profile.Alternatives
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Buy-cost heuristics per commodity category.
var buyCosts = map[string]string{
	"auth":     "$0 - $100/month (Auth0, Clerk, Firebase Auth)",
	"payment":  "2.9% + 30¢ per transaction (Stripe, Paddle)",
	"email":    "$0 - $50/month (SendGrid, Postmark, Resend)",
	"hosting":  "$20 - $500/month (Vercel, Render, managed cloud)",
	"database": "$25 - $500/month managed (RDS, Atlas, Supabase)",
}

// buildVsBuy classifies each cataloged technology by category keyword.
// Commodity capabilities (auth, payments, email, hosting) are always a
// buy; databases and frameworks depend on difficulty.
func buildVsBuy(resolved []resolvedTech) []BuildVsBuy {
	var out []BuildVsBuy
	for _, r := range resolved {
		if !r.found {
			continue
		}
		p := r.profile
		cat := strings.ToLower(p.Category)
		hardness := p.Difficulty.Ordinal()

		entry := BuildVsBuy{
			Technology:   r.tech.Name,
			BuildCost:    developmentRange(p.CostEstimate.Development.Ordinal()),
			BuyCost:      "varies by provider",
			Alternatives: p.SaaSAlternatives,
		}

		switch {
		case strings.Contains(cat, "auth"):
			entry.Decision = DecisionBuy
			entry.Reasoning = "Authentication is a solved problem with strict security requirements; managed providers are cheaper than getting it wrong."
			entry.BuyCost = buyCosts["auth"]
		case strings.Contains(cat, "payment"):
			entry.Decision = DecisionBuy
			entry.Reasoning = "Payment processing carries compliance burden (PCI-DSS); use a payments provider."
			entry.BuyCost = buyCosts["payment"]
		case strings.Contains(cat, "email"):
			entry.Decision = DecisionBuy
			entry.Reasoning = "Deliverability is hard-won; transactional email services are inexpensive."
			entry.BuyCost = buyCosts["email"]
		case strings.Contains(cat, "hosting"), strings.Contains(cat, "cdn"):
			entry.Decision = DecisionBuy
			entry.Reasoning = "Managed hosting removes undifferentiated operations work."
			entry.BuyCost = buyCosts["hosting"]
		case strings.Contains(cat, "database"):
			entry.BuyCost = buyCosts["database"]
			if hardness >= catalog.Hard.Ordinal() {
				entry.Decision = DecisionBuy
				entry.Reasoning = "Operating this database well requires specialist knowledge; a managed offering is the safer start."
			} else {
				entry.Decision = DecisionHybrid
				entry.Reasoning = "Self-host for cost control or use a managed tier for convenience; both are viable."
			}
		case strings.Contains(cat, "framework"), strings.Contains(cat, "frontend"), strings.Contains(cat, "backend"):
			switch {
			case hardness <= catalog.Easy.Ordinal():
				entry.Decision = DecisionBuild
				entry.Reasoning = "The framework is approachable; building in-house keeps full control of the product."
			case hardness >= catalog.Hard.Ordinal():
				entry.Decision = DecisionHybrid
				entry.Reasoning = "The framework is demanding; combine in-house work with off-the-shelf components or contractors."
			default:
				entry.Decision = DecisionBuild
				entry.Reasoning = "Core product code should be built in-house to preserve differentiation."
			}
		default:
			entry.Decision = DecisionBuild
			entry.Reasoning = "No commodity substitute; implement as part of the product."
		}

		out = append(out, entry)
	}
	return out
}

// Learning time per difficulty, beginner through expert tooling.
var learningTimes = map[catalog.Difficulty]string{
	catalog.VeryEasy: "1-2 weeks",
	catalog.Easy:     "2-4 weeks",
	catalog.Medium:   "1-2 months",
	catalog.Hard:     "2-4 months",
	catalog.VeryHard: "4-6 months",
}

func proficiencyFor(d catalog.Difficulty) Proficiency {
	switch d {
	case catalog.VeryEasy, catalog.Easy:
		return Beginner
	case catalog.Medium:
		return Intermediate
	case catalog.Hard:
		return Advanced
	default:
		return Expert
	}
}

var noSQLFamilies = []string{"mongo", "redis", "dynamo", "couch", "cassandra", "firestore"}

// skillRequirements emits one skill per cataloged technology plus
// category-inferred related skills, deduplicated by (skill, category) and
// sorted by proficiency descending then category.
func skillRequirements(resolved []resolvedTech) []SkillRequirement {
	seen := make(map[string]bool)
	var out []SkillRequirement

	add := func(s SkillRequirement) {
		key := strings.ToLower(s.Skill) + "|" + strings.ToLower(s.Category)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	for _, r := range resolved {
		if !r.found {
			continue
		}
		p := r.profile
		cat := strings.ToLower(p.Category)

		add(SkillRequirement{
			Skill:        p.Name,
			Category:     p.Category,
			Proficiency:  proficiencyFor(p.Difficulty),
			LearningTime: learningTimes[p.Difficulty],
		})

		switch {
		case strings.Contains(cat, "frontend"):
			add(SkillRequirement{Skill: "JavaScript fundamentals", Category: "frontend", Proficiency: Intermediate})
			add(SkillRequirement{Skill: "HTML & CSS", Category: "frontend", Proficiency: Beginner})
		case strings.Contains(cat, "backend"):
			add(SkillRequirement{Skill: "Server-side programming", Category: "backend", Proficiency: Intermediate})
			add(SkillRequirement{Skill: "API design", Category: "backend", Proficiency: Intermediate})
		case strings.Contains(cat, "database"):
			skill := "SQL & schema design"
			lower := strings.ToLower(p.Name)
			for _, fam := range noSQLFamilies {
				if strings.Contains(lower, fam) {
					skill = "NoSQL data modeling"
					break
				}
			}
			add(SkillRequirement{Skill: skill, Category: "database", Proficiency: Intermediate})
		case strings.Contains(cat, "hosting"), strings.Contains(cat, "devops"), strings.Contains(cat, "cdn"):
			add(SkillRequirement{Skill: "DevOps basics", Category: "infrastructure", Proficiency: Beginner})
			if p.Difficulty.Ordinal() >= catalog.Hard.Ordinal() {
				add(SkillRequirement{Skill: "Cloud architecture", Category: "infrastructure", Proficiency: Advanced})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Proficiency.rank() != out[j].Proficiency.rank() {
			return out[i].Proficiency.rank() < out[j].Proficiency.rank()
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Dollar-range tables per cost tier ordinal (1-5).
var (
	developmentRanges = []string{
		"$5,000 - $15,000", "$15,000 - $40,000", "$40,000 - $90,000",
		"$90,000 - $180,000", "$180,000 - $350,000",
	}
	developmentMins = []int{5000, 15000, 40000, 90000, 180000}

	infrastructureRanges = []string{
		"$20 - $100/month", "$100 - $300/month", "$300 - $1,000/month",
		"$1,000 - $3,000/month", "$3,000 - $10,000/month",
	}
	infrastructureMins = []int{20, 100, 300, 1000, 3000}

	maintenanceRanges = []string{
		"$100 - $300/month", "$300 - $800/month", "$800 - $2,000/month",
		"$2,000 - $5,000/month", "$5,000 - $12,000/month",
	}
	maintenanceMins = []int{100, 300, 800, 2000, 5000}
)

func developmentRange(ordinal int) string { return developmentRanges[tierIndex(ordinal)] }

func tierIndex(ordinal int) int {
	if ordinal < 1 {
		ordinal = 1
	}
	if ordinal > 5 {
		ordinal = 5
	}
	return ordinal - 1
}

// projectEstimates derives time, cost and team estimates from the
// resolved profiles and the complexity score.
func projectEstimates(resolved []resolvedTech, techCount, complexityScore int) ProjectEstimates {
	return ProjectEstimates{
		Time: timeEstimate(complexityScore, techCount),
		Cost: costEstimate(resolved, complexityScore),
		Team: teamSize(resolved, complexityScore),
	}
}

func timeEstimate(complexityScore, techCount int) TimeEstimate {
	base := 24.0
	switch {
	case complexityScore <= 3:
		base = 4
	case complexityScore <= 6:
		base = 12
	}

	scale := 1 + math.Min(float64(techCount)/10, 2)*0.3
	realistic := int(math.Round(base * scale))
	minWeeks := int(math.Round(float64(realistic) * 0.7))
	if minWeeks < 1 {
		minWeeks = 1
	}
	maxWeeks := int(math.Round(float64(realistic) * 1.5))

	return TimeEstimate{
		Minimum:   fmt.Sprintf("%d weeks", minWeeks),
		Maximum:   fmt.Sprintf("%d weeks", maxWeeks),
		Realistic: fmt.Sprintf("%d weeks", realistic),
	}
}

// costEstimate averages the ordinal cost tier across profiles for each
// concern, bumps a tier at complexity >= 8, and maps tiers to dollar
// ranges. The total is a first-year projection bucketed into four bands.
func costEstimate(resolved []resolvedTech, complexityScore int) CostEstimate {
	devTier := averageTier(resolved, func(c catalog.CostEstimate) catalog.CostTier { return c.Development })
	infraTier := averageTier(resolved, func(c catalog.CostEstimate) catalog.CostTier { return c.Hosting })
	maintTier := averageTier(resolved, func(c catalog.CostEstimate) catalog.CostTier { return c.Maintenance })

	if complexityScore >= 8 {
		devTier = min5(devTier + 1)
		infraTier = min5(infraTier + 1)
		maintTier = min5(maintTier + 1)
	}

	firstYear := developmentMins[tierIndex(devTier)] +
		12*(infrastructureMins[tierIndex(infraTier)]+maintenanceMins[tierIndex(maintTier)])

	return CostEstimate{
		Development:    developmentRanges[tierIndex(devTier)],
		Infrastructure: infrastructureRanges[tierIndex(infraTier)],
		Maintenance:    maintenanceRanges[tierIndex(maintTier)],
		Total:          totalBand(firstYear),
	}
}

func averageTier(resolved []resolvedTech, pick func(catalog.CostEstimate) catalog.CostTier) int {
	if len(resolved) == 0 {
		return catalog.CostMedium.Ordinal()
	}
	sum := 0
	for _, r := range resolved {
		sum += pick(r.profile.CostEstimate).Ordinal()
	}
	return int(math.Round(float64(sum) / float64(len(resolved))))
}

func min5(n int) int {
	if n > 5 {
		return 5
	}
	return n
}

func totalBand(firstYear int) string {
	switch {
	case firstYear < 25_000:
		return "Under $25,000 first year"
	case firstYear < 75_000:
		return "$25,000 - $75,000 first year"
	case firstYear < 200_000:
		return "$75,000 - $200,000 first year"
	default:
		return "Over $200,000 first year"
	}
}

func teamSize(resolved []resolvedTech, complexityScore int) TeamSize {
	var team TeamSize
	switch {
	case complexityScore <= 3:
		team = TeamSize{Minimum: 1, Recommended: 1}
	case complexityScore <= 6:
		team = TeamSize{Minimum: 1, Recommended: 2}
	case complexityScore <= 8:
		team = TeamSize{Minimum: 2, Recommended: 3}
	default:
		team = TeamSize{Minimum: 3, Recommended: 5}
	}

	categories := make(map[string]bool)
	for _, r := range resolved {
		if r.found {
			categories[strings.ToLower(r.profile.Category)] = true
		}
	}
	if len(categories) > 5 {
		team.Recommended++
	}
	return team
}

// recommendations fires the fixed rule set and sorts by priority.
func recommendations(complexityScore int, bvb []BuildVsBuy, skills []SkillRequirement) []Recommendation {
	var out []Recommendation

	hasBuy := false
	hasAlternatives := false
	for _, b := range bvb {
		if b.Decision == DecisionBuy {
			hasBuy = true
		}
		if len(b.Alternatives) > 0 {
			hasAlternatives = true
		}
	}
	hasSenior := false
	for _, s := range skills {
		if s.Proficiency == Advanced || s.Proficiency == Expert {
			hasSenior = true
			break
		}
	}

	if hasBuy {
		out = append(out, Recommendation{
			Title:       "Leverage managed services",
			Description: "Adopt the recommended SaaS components instead of building them; commodity capabilities like auth, payments and email are cheaper to buy.",
			Priority:    PriorityHigh,
		})
	}
	if complexityScore >= 7 {
		out = append(out, Recommendation{
			Title:       "Start with an MVP",
			Description: "Clone the core workflow first and defer secondary features until a minimal product validates demand.",
			Priority:    PriorityHigh,
		})
	}
	if hasSenior {
		out = append(out, Recommendation{
			Title:       "Plan for senior expertise",
			Description: "Parts of this stack demand advanced or expert proficiency; hire or contract accordingly before the build stalls.",
			Priority:    PriorityHigh,
		})
	}
	if complexityScore >= 5 {
		out = append(out, Recommendation{
			Title:       "Use starter templates",
			Description: "Boilerplates and starter kits for this stack remove weeks of setup work.",
			Priority:    PriorityMedium,
		})
	}
	if complexityScore >= 6 {
		out = append(out, Recommendation{
			Title:       "Manage infrastructure as code",
			Description: "Reproducible environments keep a multi-service deployment maintainable as the team grows.",
			Priority:    PriorityMedium,
		})
	}
	if complexityScore >= 5 {
		out = append(out, Recommendation{
			Title:       "Automate testing early",
			Description: "A stack of this size regresses quietly; continuous test runs pay for themselves quickly.",
			Priority:    PriorityMedium,
		})
	}
	if complexityScore >= 6 {
		out = append(out, Recommendation{
			Title:       "Set up monitoring",
			Description: "Instrument the clone from day one so production issues surface before users report them.",
			Priority:    PriorityLow,
		})
	}
	if hasAlternatives {
		out = append(out, Recommendation{
			Title:       "Evaluate alternatives",
			Description: "Several detected technologies have simpler substitutes; compare them before committing to the original stack.",
			Priority:    PriorityLow,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.rank() < out[j].Priority.rank()
	})
	return out
}

func complexityTierWord(score int) string {
	switch {
	case score <= 3:
		return "low"
	case score <= 6:
		return "moderate"
	default:
		return "high"
	}
}

func summary(complexityScore, techCount int, recs []Recommendation) string {
	s := fmt.Sprintf("This is a %s-complexity product built from %d detected technologies.",
		complexityTierWord(complexityScore), techCount)
	if len(recs) > 0 {
		s += fmt.Sprintf(" Top priority is to %s: %s", strings.ToLower(recs[0].Title), recs[0].Description)
	}
	return s
}
