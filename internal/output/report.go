package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Dicklesworthstone/sitescope/internal/analyzer"
	"github.com/Dicklesworthstone/sitescope/internal/clonability"
	"github.com/Dicklesworthstone/sitescope/internal/insights"
)

// Assessment renders the full styled report.
func (f *Formatter) Assessment(a *analyzer.Assessment) {
	f.Title("Clonability Assessment")

	f.Section("Detected Technologies")
	t := f.NewTable("Technology", "Categories", "Confidence")
	for _, tech := range a.Technologies {
		t.AddRow(tech.Name, strings.Join(tech.Categories, ", "), fmt.Sprintf("%d%%", tech.Confidence))
	}
	if t.RowCount() == 0 {
		f.Muted("  none detected")
	} else {
		t.Render()
	}

	f.Section("Complexity")
	f.Field("Score", "%s", f.scoreBadge(a.Complexity.Score, true))
	f.Field("Frontend", "%d/%d", a.Complexity.Breakdown.Frontend.Score, a.Complexity.Breakdown.Frontend.Max)
	f.Field("Backend", "%d/%d", a.Complexity.Breakdown.Backend.Score, a.Complexity.Breakdown.Backend.Max)
	f.Field("Infrastructure", "%d/%d", a.Complexity.Breakdown.Infrastructure.Score, a.Complexity.Breakdown.Infrastructure.Max)
	f.Line()
	f.Wrapped(a.Complexity.Explanation)

	f.Section("Clonability")
	f.Field("Score", "%s", f.scoreBadge(a.Clonability.Score, false))
	f.Field("Rating", "%s", string(a.Clonability.Rating))
	f.Field("Confidence", "%.0f%%", a.Clonability.Confidence*100)
	f.Line()
	ct := f.NewTable("Component", "Score", "Weight")
	ct.AddRow("Technical complexity", fmtScore(a.Clonability.Components.TechnicalComplexity), fmtWeight(a.Clonability.Components.TechnicalComplexity))
	ct.AddRow("Market opportunity", fmtScore(a.Clonability.Components.MarketOpportunity), fmtWeight(a.Clonability.Components.MarketOpportunity))
	ct.AddRow("Resource requirements", fmtScore(a.Clonability.Components.ResourceRequirements), fmtWeight(a.Clonability.Components.ResourceRequirements))
	ct.AddRow("Time to market", fmtScore(a.Clonability.Components.TimeToMarket), fmtWeight(a.Clonability.Components.TimeToMarket))
	ct.Render()
	f.Line()
	f.Wrapped(a.Clonability.Recommendation)

	f.Insights(a.Insights)
}

// Insights renders the insights report section.
func (f *Formatter) Insights(ins *insights.TechnologyInsights) {
	if ins == nil {
		return
	}

	f.Section("Summary")
	f.Wrapped(ins.Summary)

	if len(ins.BuildVsBuy) > 0 {
		f.Section("Build vs Buy")
		t := f.NewTable("Technology", "Decision", "Buy Cost")
		for _, b := range ins.BuildVsBuy {
			t.AddRow(b.Technology, f.decisionBadge(b.Decision), Truncate(b.BuyCost, 40))
		}
		t.Render()
	}

	if len(ins.Skills) > 0 {
		f.Section("Required Skills")
		t := f.NewTable("Skill", "Category", "Proficiency", "Ramp-up")
		for _, s := range ins.Skills {
			t.AddRow(s.Skill, s.Category, string(s.Proficiency), s.LearningTime)
		}
		t.Render()
	}

	f.Section("Estimates")
	f.Field("Time", "%s (range %s to %s)", ins.Estimates.Time.Realistic, ins.Estimates.Time.Minimum, ins.Estimates.Time.Maximum)
	f.Field("Development", "%s", ins.Estimates.Cost.Development)
	f.Field("Infrastructure", "%s", ins.Estimates.Cost.Infrastructure)
	f.Field("Maintenance", "%s", ins.Estimates.Cost.Maintenance)
	f.Field("First year", "%s", ins.Estimates.Cost.Total)
	f.Field("Team", "%d minimum, %d recommended", ins.Estimates.Team.Minimum, ins.Estimates.Team.Recommended)

	if len(ins.Alternatives) > 0 {
		f.Section("Alternatives")
		for _, name := range sortedKeys(ins.Alternatives) {
			f.Field(name, "%s", strings.Join(ins.Alternatives[name], ", "))
		}
	}

	if len(ins.Recommendations) > 0 {
		f.Section("Recommendations")
		for _, r := range ins.Recommendations {
			f.Textln("  %s %s", f.priorityBadge(r.Priority), r.Title)
			f.Wrapped("  " + r.Description)
		}
	}
}

// scoreBadge colors a 1-10 score. For complexity high is bad; for
// clonability high is good.
func (f *Formatter) scoreBadge(score int, highIsBad bool) string {
	text := fmt.Sprintf("%d/10", score)
	if !f.useColor {
		return text
	}
	good := score >= 7
	bad := score <= 3
	if highIsBad {
		good, bad = bad, good
	}
	switch {
	case good:
		return f.styles.Good.Render(text)
	case bad:
		return f.styles.Bad.Render(text)
	default:
		return f.styles.Warn.Render(text)
	}
}

func (f *Formatter) decisionBadge(d insights.BuildDecision) string {
	if !f.useColor {
		return string(d)
	}
	switch d {
	case insights.DecisionBuy:
		return f.styles.Good.Render(string(d))
	case insights.DecisionHybrid:
		return f.styles.Warn.Render(string(d))
	default:
		return f.styles.Value.Render(string(d))
	}
}

func (f *Formatter) priorityBadge(p insights.Priority) string {
	text := "[" + string(p) + "]"
	if !f.useColor {
		return text
	}
	switch p {
	case insights.PriorityHigh:
		return f.styles.Bad.Render(text)
	case insights.PriorityMedium:
		return f.styles.Warn.Render(text)
	default:
		return f.styles.Muted.Render(text)
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fmtScore(c clonability.Component) string  { return fmt.Sprintf("%.1f", c.Score) }
func fmtWeight(c clonability.Component) string { return fmt.Sprintf("%.0f%%", c.Weight*100) }

// Markdown builds a markdown rendition of the assessment, suitable for
// files or terminal rendering through glamour.
func Markdown(a *analyzer.Assessment) string {
	var b strings.Builder

	b.WriteString("# Clonability Assessment\n\n")

	b.WriteString("## Detected Technologies\n\n")
	if len(a.Technologies) == 0 {
		b.WriteString("_none detected_\n")
	} else {
		b.WriteString("| Technology | Categories | Confidence |\n|---|---|---|\n")
		for _, t := range a.Technologies {
			fmt.Fprintf(&b, "| %s | %s | %d%% |\n", t.Name, strings.Join(t.Categories, ", "), t.Confidence)
		}
	}

	fmt.Fprintf(&b, "\n## Complexity: %d/10\n\n%s\n", a.Complexity.Score, a.Complexity.Explanation)

	fmt.Fprintf(&b, "\n## Clonability: %d/10 (%s)\n\n", a.Clonability.Score, a.Clonability.Rating)
	b.WriteString("| Component | Score | Weight |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| Technical complexity | %s | %s |\n", fmtScore(a.Clonability.Components.TechnicalComplexity), fmtWeight(a.Clonability.Components.TechnicalComplexity))
	fmt.Fprintf(&b, "| Market opportunity | %s | %s |\n", fmtScore(a.Clonability.Components.MarketOpportunity), fmtWeight(a.Clonability.Components.MarketOpportunity))
	fmt.Fprintf(&b, "| Resource requirements | %s | %s |\n", fmtScore(a.Clonability.Components.ResourceRequirements), fmtWeight(a.Clonability.Components.ResourceRequirements))
	fmt.Fprintf(&b, "| Time to market | %s | %s |\n", fmtScore(a.Clonability.Components.TimeToMarket), fmtWeight(a.Clonability.Components.TimeToMarket))
	fmt.Fprintf(&b, "\n%s\n", a.Clonability.Recommendation)

	if ins := a.Insights; ins != nil {
		fmt.Fprintf(&b, "\n## Insights\n\n%s\n", ins.Summary)

		if len(ins.BuildVsBuy) > 0 {
			b.WriteString("\n### Build vs Buy\n\n| Technology | Decision | Reasoning |\n|---|---|---|\n")
			for _, e := range ins.BuildVsBuy {
				fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Technology, e.Decision, e.Reasoning)
			}
		}
		if len(ins.Skills) > 0 {
			b.WriteString("\n### Required Skills\n\n| Skill | Category | Proficiency |\n|---|---|---|\n")
			for _, s := range ins.Skills {
				fmt.Fprintf(&b, "| %s | %s | %s |\n", s.Skill, s.Category, s.Proficiency)
			}
		}

		b.WriteString("\n### Estimates\n\n")
		fmt.Fprintf(&b, "- Time: %s (range %s to %s)\n", ins.Estimates.Time.Realistic, ins.Estimates.Time.Minimum, ins.Estimates.Time.Maximum)
		fmt.Fprintf(&b, "- Development: %s\n", ins.Estimates.Cost.Development)
		fmt.Fprintf(&b, "- Infrastructure: %s\n", ins.Estimates.Cost.Infrastructure)
		fmt.Fprintf(&b, "- Maintenance: %s\n", ins.Estimates.Cost.Maintenance)
		fmt.Fprintf(&b, "- First year: %s\n", ins.Estimates.Cost.Total)
		fmt.Fprintf(&b, "- Team: %d minimum, %d recommended\n", ins.Estimates.Team.Minimum, ins.Estimates.Team.Recommended)

		if len(ins.Recommendations) > 0 {
			b.WriteString("\n### Recommendations\n\n")
			for _, r := range ins.Recommendations {
				fmt.Fprintf(&b, "- **%s** (%s): %s\n", r.Title, r.Priority, r.Description)
			}
		}
	}

	return b.String()
}

// RenderMarkdown writes markdown through glamour when color is enabled,
// falling back to the raw markdown when rendering fails or color is off.
func (f *Formatter) RenderMarkdown(md string) {
	if !f.useColor {
		fmt.Fprint(f.writer, md)
		return
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(f.width),
	)
	if err != nil {
		fmt.Fprint(f.writer, md)
		return
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		fmt.Fprint(f.writer, md)
		return
	}
	fmt.Fprint(f.writer, strings.TrimRight(rendered, "\n")+"\n")
}
