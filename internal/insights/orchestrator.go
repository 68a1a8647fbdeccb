package insights

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dicklesworthstone/sitescope/internal/catalog"
	"github.com/Dicklesworthstone/sitescope/internal/complexity"
	"github.com/Dicklesworthstone/sitescope/internal/detect"
	"github.com/Dicklesworthstone/sitescope/internal/perfmon"
)

// Retry defaults for the primary generation path.
const (
	DefaultAttempts = 3
	DefaultBackoff  = 200 * time.Millisecond
)

// Orchestrator produces insights reports behind a cache, a retry loop and
// a layered fallback chain. Its Generate method never returns an error:
// callers always get a usable report, degraded if necessary.
type Orchestrator struct {
	catalog *catalog.Catalog
	cache   *Cache
	monitor *perfmon.Monitor
	logger  *slog.Logger

	attempts int
	backoff  time.Duration

	// generateFn is the primary generation strategy; tests substitute it
	// to force failures.
	generateFn func(techs []detect.Technology, complexityScore int) (*TechnologyInsights, error)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRetry overrides the retry attempt count and backoff base.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(o *Orchestrator) {
		if attempts > 0 {
			o.attempts = attempts
		}
		if backoff > 0 {
			o.backoff = backoff
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// withGenerator substitutes the primary generation strategy (tests only).
func withGenerator(fn func([]detect.Technology, int) (*TechnologyInsights, error)) Option {
	return func(o *Orchestrator) { o.generateFn = fn }
}

// NewOrchestrator wires the orchestrator to its injected collaborators.
func NewOrchestrator(cat *catalog.Catalog, cache *Cache, monitor *perfmon.Monitor, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog:  cat,
		cache:    cache,
		monitor:  monitor,
		attempts: DefaultAttempts,
		backoff:  DefaultBackoff,
	}
	gen := &generator{catalog: cat}
	o.generateFn = func(techs []detect.Technology, score int) (ins *TechnologyInsights, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("insights generation panicked: %v", r)
			}
		}()
		if err := cat.Load(); err != nil {
			return nil, err
		}
		return gen.generate(techs, score), nil
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate returns insights for the technology set. The degradation
// chain is: cache hit, full generation with retry, pattern fallback,
// minimal constant report. There is no error return path.
func (o *Orchestrator) Generate(ctx context.Context, techs []detect.Technology, complexityScore int) *TechnologyInsights {
	start := time.Now()
	names := detect.Names(techs)

	if cached, ok := o.cache.Get(names); ok {
		o.monitor.RecordInsights(time.Since(start), true, false)
		return cached
	}

	ins, err := o.generateWithRetry(ctx, techs, complexityScore)
	if err == nil {
		o.cache.Set(names, ins, Key(names))
		o.monitor.RecordInsights(time.Since(start), true, false)
		return ins
	}
	o.logf("insights generation exhausted retries", "error", err, "technologies", len(techs))

	if ins := o.safeFallback(techs, complexityScore); ins != nil {
		o.monitor.RecordInsights(time.Since(start), true, true)
		return ins
	}

	o.monitor.RecordInsights(time.Since(start), false, true)
	return minimalInsights()
}

// generateWithRetry runs the primary strategy with exponential backoff.
// The wait is a cancellable timer, never a blocking sleep: ctx
// cancellation aborts the remaining attempts immediately.
func (o *Orchestrator) generateWithRetry(ctx context.Context, techs []detect.Technology, complexityScore int) (*TechnologyInsights, error) {
	var lastErr error
	for attempt := 1; attempt <= o.attempts; attempt++ {
		if attempt > 1 {
			delay := o.backoff * (1 << (attempt - 2))
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
			o.logf("retrying insights generation", "attempt", attempt, "delay", delay)
		}

		ins, err := o.generateFn(techs, complexityScore)
		if err == nil {
			return ins, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// safeFallback runs the pattern fallback, absorbing panics so the
// minimal report remains reachable.
func (o *Orchestrator) safeFallback(techs []detect.Technology, complexityScore int) (ins *TechnologyInsights) {
	defer func() {
		if r := recover(); r != nil {
			o.logf("fallback insights generation failed", "panic", r)
			ins = nil
		}
	}()
	return fallbackInsights(techs, complexityScore)
}

// WarmCache pre-generates insights for common technology stacks.
func (o *Orchestrator) WarmCache(ctx context.Context) {
	o.cache.Warm(ctx, o.logger, func(ctx context.Context, technologies []string) (*TechnologyInsights, error) {
		techs := make([]detect.Technology, len(technologies))
		for i, name := range technologies {
			techs[i] = detect.Technology{Name: name, Confidence: 100}
		}
		return o.generateFn(techs, complexity.Calculate(techs).Score)
	})
}

func (o *Orchestrator) logf(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Warn(msg, args...)
	}
}
