package clonability

import (
	"math"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/sitescope/internal/market"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e
}

func TestWeightsSumToOne(t *testing.T) {
	t.Parallel()

	if sum := DefaultWeights().Sum(); sum != 1.0 {
		t.Errorf("default weights sum = %v, want 1.0", sum)
	}
}

func TestNewEngineRejectsBadWeights(t *testing.T) {
	t.Parallel()

	_, err := NewEngineWithWeights(Weights{Technical: 0.5, Market: 0.3, Resources: 0.2, Time: 0.1})
	if err == nil {
		t.Fatal("weights summing to 1.1 should be rejected")
	}
}

func TestTechnicalSubScoreInvertsComplexity(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	for complexity := 1; complexity <= 10; complexity++ {
		s := e.Calculate(complexity, nil, ResourceEstimates{})
		got := s.Components.TechnicalComplexity.Score
		want := float64(11 - complexity)
		if got != want {
			t.Errorf("technical sub-score for complexity %d = %v, want %v", complexity, got, want)
		}
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	markets := []*market.Data{
		nil,
		{},
		{
			Threats:     []string{"a", "b", "c", "d", "e", "f"},
			Strengths:   []string{"a", "b", "c", "d", "e", "f"},
			Competitors: []string{"a", "b", "c", "d", "e", "f", "g"},
		},
		{
			Opportunities: []string{"a", "b", "c", "d", "e"},
			Weaknesses:    []string{"a", "b", "c", "d", "e"},
		},
	}
	estimates := []ResourceEstimates{
		{},
		{DevelopmentCost: "$500,000", InfrastructureCost: "$5,000/month", TimeRealistic: "2 years", TeamMinimum: 5},
		{DevelopmentCost: "$10,000", InfrastructureCost: "$20/month", TimeRealistic: "2 weeks", TeamMinimum: 1},
	}

	for complexity := 1; complexity <= 10; complexity++ {
		for _, md := range markets {
			for _, est := range estimates {
				s := e.Calculate(complexity, md, est)
				if s.Score < 1 || s.Score > 10 {
					t.Errorf("score %d out of [1,10] (complexity %d)", s.Score, complexity)
				}
				if s.Confidence < 0 || s.Confidence > 1 {
					t.Errorf("confidence %v out of [0,1]", s.Confidence)
				}
			}
		}
	}
}

func TestRatingBoundaries(t *testing.T) {
	t.Parallel()

	want := map[int]Rating{
		1: VeryDifficult, 2: VeryDifficult,
		3: Difficult, 4: Difficult,
		5: Moderate, 6: Moderate,
		7: Easy, 8: Easy,
		9: VeryEasy, 10: VeryEasy,
	}
	for score := 1; score <= 10; score++ {
		if got := ratingFor(score); got != want[score] {
			t.Errorf("ratingFor(%d) = %q, want %q", score, got, want[score])
		}
	}
}

func TestMarketSubScore(t *testing.T) {
	t.Parallel()

	many := func(n int) []string { return make([]string, n) }

	tests := []struct {
		name string
		md   *market.Data
		want float64
	}{
		{"absent data is neutral", nil, 5},
		{"empty data with no competitors", &market.Data{}, 7}, // 5 + 2 for zero competitors
		{"opportunity bonus capped", &market.Data{Opportunities: many(10), Competitors: many(4)}, 7},
		{"threats penalty capped", &market.Data{Threats: many(10), Competitors: many(4)}, 3},
		{"crowded market", &market.Data{Competitors: many(8)}, 4},
		{"few competitors", &market.Data{Competitors: many(2)}, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := marketSubScore(tc.md); got != tc.want {
				t.Errorf("marketSubScore = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResourceSubScoreFallbacks(t *testing.T) {
	t.Parallel()

	// Unparsable strings use defaults: dev 50000 (no adjustment band... 50k
	// falls in <100k: +0), monthly 200 (<500: +0), team 0 (no adjustment).
	got := resourceSubScore(ResourceEstimates{DevelopmentCost: "tbd", InfrastructureCost: "unknown"})
	if got != 5 {
		t.Errorf("fallback resource sub-score = %v, want 5", got)
	}

	cheap := resourceSubScore(ResourceEstimates{
		DevelopmentCost:    "$15,000",
		InfrastructureCost: "$50/month",
		TeamMinimum:        1,
	})
	if cheap != 10 {
		t.Errorf("cheap resource sub-score = %v, want 10", cheap)
	}

	expensive := resourceSubScore(ResourceEstimates{
		DevelopmentCost:    "$300,000",
		InfrastructureCost: "$4,000/month",
		TeamMinimum:        4,
	})
	if expensive != 1 {
		t.Errorf("expensive resource sub-score = %v, want 1 (clamped)", expensive)
	}
}

func TestTimeSubScoreMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"4 weeks", 10},
		{"12 weeks", 8},
		{"3 months", 8},
		{"24 weeks", 6},
		{"48 weeks", 4},
		{"2 years", 2},
		{"someday", 6}, // default 24 weeks
	}
	for _, tc := range tests {
		if got := timeSubScore(tc.in); got != tc.want {
			t.Errorf("timeSubScore(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEasyCloneScenario(t *testing.T) {
	t.Parallel()

	e := newEngine(t)
	s := e.Calculate(2, nil, ResourceEstimates{
		DevelopmentCost:    "$15,000",
		InfrastructureCost: "$50/month",
		TimeRealistic:      "4 weeks",
		TeamMinimum:        1,
	})
	if s.Score < 7 {
		t.Errorf("easy clone score = %d, want >= 7", s.Score)
	}
	if s.Rating != Easy && s.Rating != VeryEasy {
		t.Errorf("easy clone rating = %q, want easy or very-easy", s.Rating)
	}
}

func TestRecommendationBranchesOnWeakerDriver(t *testing.T) {
	t.Parallel()

	// Technical weaker than market: high complexity, decent market.
	techDriven := recommendation(3, 1, 7)
	if !strings.Contains(techDriven, "technical") {
		t.Errorf("expected technical driver, got %q", techDriven)
	}

	// Market weaker than technical.
	marketDriven := recommendation(3, 9, 2)
	if !strings.Contains(marketDriven, "market") {
		t.Errorf("expected market driver, got %q", marketDriven)
	}
}

func TestConfidence(t *testing.T) {
	t.Parallel()

	many := func(n int) []string { return make([]string, n) }

	tests := []struct {
		name string
		md   *market.Data
		want float64
	}{
		{"no market data", nil, 0.6},
		{"market data only", &market.Data{}, 0.8},
		{"with competitors", &market.Data{Competitors: many(2)}, 0.9},
		{"full signal", &market.Data{
			Strengths: many(3), Weaknesses: many(3),
			Opportunities: many(3), Threats: many(3),
			Competitors: many(2),
		}, 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := confidence(tc.md); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("confidence = %v, want %v", got, tc.want)
			}
		})
	}
}
