// Package analyzer wires the scoring pipeline together: complexity,
// insights and clonability behind a single entry point.
package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dicklesworthstone/sitescope/internal/catalog"
	"github.com/Dicklesworthstone/sitescope/internal/clonability"
	"github.com/Dicklesworthstone/sitescope/internal/complexity"
	"github.com/Dicklesworthstone/sitescope/internal/config"
	"github.com/Dicklesworthstone/sitescope/internal/detect"
	"github.com/Dicklesworthstone/sitescope/internal/insights"
	"github.com/Dicklesworthstone/sitescope/internal/market"
	"github.com/Dicklesworthstone/sitescope/internal/perfmon"
)

// Assessment is the full pipeline result for one site.
type Assessment struct {
	Technologies []detect.Technology          `json:"technologies"`
	Complexity   complexity.EnhancedResult    `json:"complexity"`
	Clonability  clonability.Score            `json:"clonability"`
	Insights     *insights.TechnologyInsights `json:"insights"`
}

// Analyzer holds the pipeline collaborators, built once and reused.
type Analyzer struct {
	catalog      *catalog.Catalog
	engine       *clonability.Engine
	orchestrator *insights.Orchestrator
	cache        *insights.Cache
	monitor      *perfmon.Monitor
	logger       *slog.Logger
}

// New builds the pipeline from configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Analyzer, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	engine, err := clonability.NewEngine()
	if err != nil {
		return nil, err
	}

	// An unreadable catalog is the pipeline's one fatal error: it must
	// surface here, not be retried and degraded at generation time.
	cat := catalog.New(cfg.CatalogPath)
	if err := cat.Load(); err != nil {
		return nil, err
	}

	cache := insights.NewCache(cfg.TTL())
	monitor := perfmon.New(cfg.SlowThreshold(), logger)
	orch := insights.NewOrchestrator(cat, cache, monitor,
		insights.WithRetry(cfg.Retry.Attempts, cfg.Backoff()),
		insights.WithLogger(logger),
	)

	return &Analyzer{
		catalog:      cat,
		engine:       engine,
		orchestrator: orch,
		cache:        cache,
		monitor:      monitor,
		logger:       logger,
	}, nil
}

// Catalog exposes the profile catalog for lookup commands.
func (a *Analyzer) Catalog() *catalog.Catalog { return a.catalog }

// CacheStats returns a snapshot of the insights cache counters.
func (a *Analyzer) CacheStats() insights.CacheStats { return a.cache.Stats() }

// MonitorStats returns a snapshot of the performance monitor.
func (a *Analyzer) MonitorStats() perfmon.Stats { return a.monitor.Stats() }

// WarmCache pre-generates insights for common technology stacks.
func (a *Analyzer) WarmCache(ctx context.Context) { a.orchestrator.WarmCache(ctx) }

// StartSweeper launches the periodic cache sweep; it stops when ctx is
// cancelled.
func (a *Analyzer) StartSweeper(ctx context.Context, interval time.Duration) {
	a.cache.StartSweeper(ctx, interval, a.logger)
}

// Run executes the full pipeline. Market data and resource estimates are
// optional: nil market data degrades the market sub-score and confidence,
// and zero estimates are filled in from the generated insights so the
// clonability resource axis still reflects the stack.
func (a *Analyzer) Run(ctx context.Context, techs []detect.Technology, md *market.Data, est clonability.ResourceEstimates) *Assessment {
	start := time.Now()

	cx := complexity.CalculateEnhanced(techs)
	a.monitor.RecordDetection(time.Since(start), true)

	ins := a.orchestrator.Generate(ctx, techs, cx.Score)

	if est == (clonability.ResourceEstimates{}) {
		est = estimatesFromInsights(ins)
	}
	score := a.engine.Calculate(cx.Score, md, est)

	return &Assessment{
		Technologies: techs,
		Complexity:   cx,
		Clonability:  score,
		Insights:     ins,
	}
}

// Insights runs complexity scoring and insights generation without the
// clonability engine.
func (a *Analyzer) Insights(ctx context.Context, techs []detect.Technology) *insights.TechnologyInsights {
	start := time.Now()
	cx := complexity.Calculate(techs)
	a.monitor.RecordDetection(time.Since(start), true)
	return a.orchestrator.Generate(ctx, techs, cx.Score)
}

// estimatesFromInsights maps the generated project estimates onto the
// clonability engine's resource inputs.
func estimatesFromInsights(ins *insights.TechnologyInsights) clonability.ResourceEstimates {
	if ins == nil {
		return clonability.ResourceEstimates{}
	}
	return clonability.ResourceEstimates{
		DevelopmentCost:    ins.Estimates.Cost.Development,
		InfrastructureCost: ins.Estimates.Cost.Infrastructure,
		TimeRealistic:      ins.Estimates.Time.Realistic,
		TeamMinimum:        ins.Estimates.Team.Minimum,
		TeamRecommended:    ins.Estimates.Team.Recommended,
	}
}
