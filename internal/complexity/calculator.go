// Package complexity turns a flat list of detected technologies into a
// deterministic, explainable 1-10 complexity score. Scoring is a pure
// function of the input; two calls with the same list always agree.
package complexity

import (
	"github.com/Dicklesworthstone/sitescope/internal/detect"
)

// Axis maximums for the score breakdown.
const (
	FrontendMax       = 3
	BackendMax        = 4
	InfrastructureMax = 3
)

// Level is a coarse low/medium/high classification.
type Level string

const (
	Low         Level = "low"
	MediumLevel Level = "medium"
	High        Level = "high"
)

// Factors are the coarse drivers behind a complexity score.
type Factors struct {
	CustomCode               bool  `json:"custom_code"`
	FrameworkComplexity      Level `json:"framework_complexity"`
	InfrastructureComplexity Level `json:"infrastructure_complexity"`
	TechnologyCount          int   `json:"technology_count"`
	LicensingComplexity      bool  `json:"licensing_complexity"`
}

// AxisBreakdown is the per-axis contribution to the score.
type AxisBreakdown struct {
	Score        int      `json:"score"`
	Max          int      `json:"max"`
	Technologies []string `json:"technologies,omitempty"`
}

// Breakdown splits the base score across the three axes.
type Breakdown struct {
	Frontend       AxisBreakdown `json:"frontend"`
	Backend        AxisBreakdown `json:"backend"`
	Infrastructure AxisBreakdown `json:"infrastructure"`
}

// Result is the legacy calculator output: score plus factors.
type Result struct {
	Score   int     `json:"score"`
	Factors Factors `json:"factors"`
}

// EnhancedResult adds the breakdown and a human-readable explanation.
type EnhancedResult struct {
	Score       int       `json:"score"`
	Factors     Factors   `json:"factors"`
	Breakdown   Breakdown `json:"breakdown"`
	Explanation string    `json:"explanation"`
}

// Calculate returns the legacy score-and-factors result. It is defined as
// a projection of CalculateEnhanced so the two can never disagree.
func Calculate(techs []detect.Technology) Result {
	e := CalculateEnhanced(techs)
	return Result{Score: e.Score, Factors: e.Factors}
}

// CalculateEnhanced scores the technology list across the frontend,
// backend and infrastructure axes, applies count and licensing modifiers,
// and clamps the result to [1,10].
func CalculateEnhanced(techs []detect.Technology) EnhancedResult {
	names := detect.Names(techs)

	frontend := classifyAxis(names, frontendTiers)
	backend := classifyAxis(names, backendTiers)
	infra := classifyAxis(names, infraTiers)

	base := frontend.score + backend.score + infra.score

	modifiers := 0
	switch {
	case len(techs) > 20:
		modifiers += 2
	case len(techs) > 10:
		modifiers++
	}
	licensed := hasCommercial(names)
	if licensed {
		modifiers++
	}

	score := clampScore(base + modifiers)

	// Coarse factor classification. Deliberately derived from tier
	// membership rather than the breakdown scores: a complex frontend
	// framework with no backend still reads as low framework complexity.
	// Kept for compatibility with the original scoring behavior.
	noCode := frontend.tiersSeen[0]
	modernFrontend := frontend.tiersSeen[2]
	complexBackend := backend.tiersSeen[3]
	microservices := backend.tiersSeen[4]
	cloudPlatform := infra.tiersSeen[2]

	frameworkLevel := Low
	switch {
	case noCode:
		frameworkLevel = Low
	case complexBackend:
		frameworkLevel = High
	case modernFrontend:
		frameworkLevel = MediumLevel
	}

	infraLevel := Low
	switch {
	case microservices:
		infraLevel = High
	case cloudPlatform:
		infraLevel = MediumLevel
	}

	factors := Factors{
		CustomCode:               !(noCode && !modernFrontend && !complexBackend),
		FrameworkComplexity:      frameworkLevel,
		InfrastructureComplexity: infraLevel,
		TechnologyCount:          len(techs),
		LicensingComplexity:      licensed,
	}

	breakdown := Breakdown{
		Frontend:       AxisBreakdown{Score: frontend.score, Max: FrontendMax, Technologies: frontend.matched},
		Backend:        AxisBreakdown{Score: backend.score, Max: BackendMax, Technologies: backend.matched},
		Infrastructure: AxisBreakdown{Score: infra.score, Max: InfrastructureMax, Technologies: infra.matched},
	}

	return EnhancedResult{
		Score:       score,
		Factors:     factors,
		Breakdown:   breakdown,
		Explanation: explain(score, factors, frontend, backend, infra),
	}
}

func clampScore(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}
