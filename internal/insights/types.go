// Package insights produces the actionable engineering report for a
// detected technology stack: alternatives, build-vs-buy guidance, skill
// requirements, time/cost/team estimates and prioritized recommendations.
// Generation is wrapped in caching, retry and layered fallback so the
// orchestrator never fails visibly.
package insights

// Priority orders recommendations.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// BuildDecision is the build-vs-buy verdict for one technology.
type BuildDecision string

const (
	DecisionBuild  BuildDecision = "build"
	DecisionBuy    BuildDecision = "buy"
	DecisionHybrid BuildDecision = "hybrid"
)

// BuildVsBuy is the guidance for a single technology.
type BuildVsBuy struct {
	Technology   string        `json:"technology"`
	Decision     BuildDecision `json:"decision"`
	Reasoning    string        `json:"reasoning"`
	BuildCost    string        `json:"build_cost"`
	BuyCost      string        `json:"buy_cost"`
	Alternatives []string      `json:"alternatives,omitempty"`
}

// Proficiency is the skill level a technology demands.
type Proficiency string

const (
	Beginner     Proficiency = "beginner"
	Intermediate Proficiency = "intermediate"
	Advanced     Proficiency = "advanced"
	Expert       Proficiency = "expert"
)

func (p Proficiency) rank() int {
	switch p {
	case Expert:
		return 0
	case Advanced:
		return 1
	case Intermediate:
		return 2
	default:
		return 3
	}
}

// SkillRequirement is one skill a cloning team needs.
type SkillRequirement struct {
	Skill        string      `json:"skill"`
	Category     string      `json:"category"`
	Proficiency  Proficiency `json:"proficiency"`
	LearningTime string      `json:"learning_time,omitempty"`
}

// TimeEstimate is a min/realistic/max delivery window.
type TimeEstimate struct {
	Minimum   string `json:"minimum"`
	Maximum   string `json:"maximum"`
	Realistic string `json:"realistic"`
}

// CostEstimate is a first-year cost projection in dollar-range strings.
type CostEstimate struct {
	Development    string `json:"development"`
	Infrastructure string `json:"infrastructure"` // monthly
	Maintenance    string `json:"maintenance"`    // monthly
	Total          string `json:"total"`          // first-year band
}

// TeamSize is the staffing estimate.
type TeamSize struct {
	Minimum     int `json:"minimum"`
	Recommended int `json:"recommended"`
}

// ProjectEstimates aggregates time, cost and team estimates.
type ProjectEstimates struct {
	Time TimeEstimate `json:"time"`
	Cost CostEstimate `json:"cost"`
	Team TeamSize     `json:"team"`
}

// Recommendation is one prioritized, actionable suggestion.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// TechnologyInsights is the complete insights report.
type TechnologyInsights struct {
	Alternatives    map[string][]string `json:"alternatives,omitempty"`
	BuildVsBuy      []BuildVsBuy        `json:"build_vs_buy,omitempty"`
	Skills          []SkillRequirement  `json:"skills,omitempty"`
	Estimates       ProjectEstimates    `json:"estimates"`
	Recommendations []Recommendation    `json:"recommendations"`
	Summary         string              `json:"summary"`
}
