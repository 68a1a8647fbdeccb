package analyzer

import (
	"context"
	"testing"

	"github.com/Dicklesworthstone/sitescope/internal/clonability"
	"github.com/Dicklesworthstone/sitescope/internal/config"
	"github.com/Dicklesworthstone/sitescope/internal/detect"
	"github.com/Dicklesworthstone/sitescope/internal/market"
)

func techs(names ...string) []detect.Technology {
	out := make([]detect.Technology, len(names))
	for i, n := range names {
		out[i] = detect.Technology{Name: n, Confidence: 100}
	}
	return out
}

func TestRunFullPipeline(t *testing.T) {
	t.Parallel()

	a, err := New(config.Default(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	md := &market.Data{
		Strengths:   []string{"strong brand"},
		Weaknesses:  []string{"pricey"},
		Competitors: []string{"one", "two"},
	}
	est := clonability.ResourceEstimates{
		DevelopmentCost:    "$30,000",
		InfrastructureCost: "$300/month",
		TimeRealistic:      "12 weeks",
		TeamMinimum:        1,
		TeamRecommended:    2,
	}

	got := a.Run(context.Background(), techs("React", "Node.js", "PostgreSQL"), md, est)

	if got.Complexity.Score < 1 || got.Complexity.Score > 10 {
		t.Errorf("complexity score %d out of range", got.Complexity.Score)
	}
	if got.Clonability.Score < 1 || got.Clonability.Score > 10 {
		t.Errorf("clonability score %d out of range", got.Clonability.Score)
	}
	if got.Insights == nil {
		t.Fatal("insights missing")
	}
	if got.Clonability.Rating == "" || got.Clonability.Recommendation == "" {
		t.Errorf("incomplete clonability score: %+v", got.Clonability)
	}
	if len(got.Technologies) != 3 {
		t.Errorf("technologies not carried through: %d", len(got.Technologies))
	}
}

func TestRunDerivesEstimatesFromInsights(t *testing.T) {
	t.Parallel()

	a, err := New(config.Default(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := a.Run(context.Background(), techs("Webflow"), nil, clonability.ResourceEstimates{})

	// With no caller-provided estimates, the resource sub-score must
	// still be grounded in generated estimates rather than empty-string
	// fallbacks alone.
	if got.Insights.Estimates.Cost.Development == "" {
		t.Fatal("insights estimates missing")
	}
	if got.Clonability.Components.ResourceRequirements.Score == 0 {
		t.Error("resource component not computed")
	}
}

func TestNewFailsOnUnreadableCatalog(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.CatalogPath = "/nonexistent/profiles.yaml"

	if _, err := New(cfg, nil); err == nil {
		t.Fatal("a misconfigured catalog path must fail construction, not degrade later")
	}
}

func TestRunNilConfigAndEmptyInput(t *testing.T) {
	t.Parallel()

	a, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := a.Run(context.Background(), nil, nil, clonability.ResourceEstimates{})
	if got == nil || got.Insights == nil {
		t.Fatal("pipeline must degrade, not fail")
	}
	if got.Complexity.Score != 1 {
		t.Errorf("empty stack complexity = %d, want 1", got.Complexity.Score)
	}
}

func TestStatsSurfaces(t *testing.T) {
	t.Parallel()

	a, err := New(config.Default(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a.Run(context.Background(), techs("React"), nil, clonability.ResourceEstimates{})

	if got := a.MonitorStats().Samples; got == 0 {
		t.Error("monitor recorded no samples")
	}
	cs := a.CacheStats()
	if cs.Size == 0 {
		t.Errorf("successful run should populate the cache: %+v", cs)
	}
}
