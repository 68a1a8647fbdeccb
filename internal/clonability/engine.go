// Package clonability combines a technical complexity score with market
// and resource context into a single weighted 1-10 clonability score.
// Higher means easier to clone.
package clonability

import (
	"fmt"
	"math"

	"github.com/Dicklesworthstone/sitescope/internal/market"
	"github.com/Dicklesworthstone/sitescope/internal/numparse"
)

// Rating buckets a clonability score for human consumption.
type Rating string

const (
	VeryDifficult Rating = "very-difficult"
	Difficult     Rating = "difficult"
	Moderate      Rating = "moderate"
	Easy          Rating = "easy"
	VeryEasy      Rating = "very-easy"
)

// Weights distribute the four sub-scores. They must sum to exactly 1.0;
// NewEngine validates this once at construction.
type Weights struct {
	Technical float64 `json:"technical_complexity"`
	Market    float64 `json:"market_opportunity"`
	Resources float64 `json:"resource_requirements"`
	Time      float64 `json:"time_to_market"`
}

// DefaultWeights returns the standard weight configuration.
func DefaultWeights() Weights {
	return Weights{
		Technical: 0.4,
		Market:    0.3,
		Resources: 0.2,
		Time:      0.1,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Technical + w.Market + w.Resources + w.Time
}

// Component is one weighted sub-score of the final result.
type Component struct {
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// Components collects the four weighted sub-scores.
type Components struct {
	TechnicalComplexity  Component `json:"technical_complexity"`
	MarketOpportunity    Component `json:"market_opportunity"`
	ResourceRequirements Component `json:"resource_requirements"`
	TimeToMarket         Component `json:"time_to_market"`
}

// Score is the full clonability assessment.
type Score struct {
	Score          int        `json:"score"` // 1-10
	Rating         Rating     `json:"rating"`
	Components     Components `json:"components"`
	Recommendation string     `json:"recommendation"`
	Confidence     float64    `json:"confidence"` // 0-1
}

// ResourceEstimates carries the resource context consumed by the engine.
// Cost and time fields are free text; numbers are extracted with
// documented fallbacks, never errors.
type ResourceEstimates struct {
	DevelopmentCost    string `json:"development_cost"`
	InfrastructureCost string `json:"infrastructure_cost"` // monthly
	TimeRealistic      string `json:"time_realistic"`
	TeamMinimum        int    `json:"team_minimum"`
	TeamRecommended    int    `json:"team_recommended"`
}

// Engine computes clonability scores with a fixed weight configuration.
type Engine struct {
	weights Weights
}

// NewEngine validates the default weights and returns a ready engine.
func NewEngine() (*Engine, error) {
	return NewEngineWithWeights(DefaultWeights())
}

// NewEngineWithWeights validates that the weights sum to exactly 1.0.
// The check happens once here, not per call.
func NewEngineWithWeights(w Weights) (*Engine, error) {
	if diff := math.Abs(w.Sum() - 1.0); diff > 1e-9 {
		return nil, fmt.Errorf("clonability weights sum to %v, want 1.0", w.Sum())
	}
	return &Engine{weights: w}, nil
}

// Weights returns the engine's weight configuration.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Calculate combines the complexity score with market data (nil means
// absent) and resource estimates into a clonability score.
func (e *Engine) Calculate(complexityScore int, md *market.Data, est ResourceEstimates) Score {
	technical := technicalSubScore(complexityScore)
	marketScore := marketSubScore(md)
	resources := resourceSubScore(est)
	timeScore := timeSubScore(est.TimeRealistic)

	weighted := technical*e.weights.Technical +
		marketScore*e.weights.Market +
		resources*e.weights.Resources +
		timeScore*e.weights.Time
	final := clampInt(int(math.Round(weighted)), 1, 10)

	return Score{
		Score:  final,
		Rating: ratingFor(final),
		Components: Components{
			TechnicalComplexity:  Component{Score: technical, Weight: e.weights.Technical},
			MarketOpportunity:    Component{Score: marketScore, Weight: e.weights.Market},
			ResourceRequirements: Component{Score: resources, Weight: e.weights.Resources},
			TimeToMarket:         Component{Score: timeScore, Weight: e.weights.Time},
		},
		Recommendation: recommendation(final, technical, marketScore),
		Confidence:     confidence(md),
	}
}

// technicalSubScore inverts difficulty into ease: 11 - complexity.
func technicalSubScore(complexityScore int) float64 {
	return float64(11 - clampInt(complexityScore, 1, 10))
}

// marketSubScore folds SWOT and competitor counts into a 1-10 score.
// Absent market data reads as a neutral 5.
func marketSubScore(md *market.Data) float64 {
	if md == nil {
		return 5
	}

	score := 5.0
	score += math.Min(float64(len(md.Opportunities))*0.5, 2)
	score -= math.Min(float64(len(md.Strengths))*0.3, 1.5)
	score += math.Min(float64(len(md.Weaknesses))*0.3, 1.5)
	score -= math.Min(float64(len(md.Threats))*0.4, 2)

	switch n := len(md.Competitors); {
	case n == 0:
		score += 2
	case n <= 3:
		score++
	case n <= 5:
		// crowded but viable, no adjustment
	default:
		score--
	}

	return math.Round(clampFloat(score, 1, 10))
}

// resourceSubScore scores affordability from cost thresholds and team
// size. Unparsable figures fall back to the numparse defaults.
func resourceSubScore(est ResourceEstimates) float64 {
	score := 5.0

	dev := numparse.Amount(est.DevelopmentCost, numparse.DefaultDevelopmentCost)
	switch {
	case dev < 20_000:
		score += 3
	case dev < 50_000:
		score += 2
	case dev < 100_000:
		// mid-range, no adjustment
	case dev < 200_000:
		score -= 2
	default:
		score -= 3
	}

	monthly := numparse.Amount(est.InfrastructureCost, numparse.DefaultMonthlyCost)
	switch {
	case monthly < 100:
		score++
	case monthly < 500:
		// typical, no adjustment
	case monthly < 2_000:
		score--
	default:
		score -= 2
	}

	if est.TeamMinimum == 1 {
		score++
	} else if est.TeamMinimum >= 3 {
		score--
	}

	return clampFloat(score, 1, 10)
}

// timeSubScore maps the realistic time estimate (in weeks) onto a fixed
// scale with no interpolation.
func timeSubScore(realistic string) float64 {
	weeks := numparse.Weeks(realistic, numparse.DefaultWeeks)
	switch {
	case weeks <= 4:
		return 10
	case weeks <= 12:
		return 8
	case weeks <= 24:
		return 6
	case weeks <= 48:
		return 4
	default:
		return 2
	}
}

func ratingFor(score int) Rating {
	switch {
	case score >= 9:
		return VeryEasy
	case score >= 7:
		return Easy
	case score >= 5:
		return Moderate
	case score >= 3:
		return Difficult
	default:
		return VeryDifficult
	}
}

// recommendation branches first on the score band; inside the 3-4 band it
// names the weaker of the technical and market drivers so the guidance is
// targeted.
func recommendation(score int, technical, marketScore float64) string {
	switch {
	case score >= 9:
		return "Excellent cloning opportunity. The stack is simple and conditions are favorable; a small team can ship a competitive clone quickly."
	case score >= 7:
		return "Good cloning opportunity. The technology is approachable; focus on differentiation rather than raw feasibility."
	case score >= 5:
		return "Feasible with preparation. Expect meaningful engineering effort; validate the market before committing a full build."
	case score >= 3:
		if technical < marketScore {
			return "Difficult, driven by technical complexity. Consider simplifying the architecture or buying managed components before attempting a clone."
		}
		return "Difficult, driven by weak market conditions. The build is possible, but validate demand and differentiation before investing."
	default:
		return "Not recommended. Both the engineering lift and the market conditions work against a clone; look for a narrower wedge instead."
	}
}

// confidence estimates how much signal backed the score.
func confidence(md *market.Data) float64 {
	c := 0.5
	if md != nil {
		c += 0.2
		if md.SWOTCount() >= 12 {
			c += 0.1
		}
		if len(md.Competitors) > 0 {
			c += 0.1
		}
	}
	// Resource estimates always contribute a fixed baseline: defaults are
	// used even when parsing fails, so some resource signal always exists.
	c += 0.1
	return clampFloat(c, 0, 1)
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func clampFloat(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
