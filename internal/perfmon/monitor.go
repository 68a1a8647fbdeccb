// Package perfmon tracks rolling performance metrics for the scoring
// pipeline: success rate, fallback rate, average duration and slow
// operations. It keeps the last 1000 samples in memory; nothing is
// persisted.
package perfmon

import (
	"log/slog"
	"sync"
	"time"
)

const (
	// maxSamples caps the rolling buffer; the oldest sample is dropped
	// on overflow.
	maxSamples = 1000

	// DefaultSlowThreshold marks an operation as slow.
	DefaultSlowThreshold = 10 * time.Second

	// statsLogInterval is how many samples pass between full stats logs.
	statsLogInterval = 50
)

// Sample is one recorded operation.
type Sample struct {
	Timestamp time.Time
	Operation string
	Duration  time.Duration
	Success   bool
	Fallback  bool
}

// Stats summarizes the current rolling buffer.
type Stats struct {
	Samples      int           `json:"samples"`
	SuccessRate  float64       `json:"success_rate"`
	FallbackRate float64       `json:"fallback_rate"`
	AvgDuration  time.Duration `json:"avg_duration"`
	SlowCount    int           `json:"slow_count"`
}

// Monitor is a process-wide rolling metrics collector. Construct once
// with New and inject it; all methods are safe for concurrent use.
type Monitor struct {
	mu            sync.Mutex
	samples       []Sample
	slowThreshold time.Duration
	logger        *slog.Logger
	recorded      int64 // total samples ever recorded, drives periodic logging
	now           func() time.Time
}

// New creates a monitor. A zero slowThreshold uses DefaultSlowThreshold;
// a nil logger disables logging.
func New(slowThreshold time.Duration, logger *slog.Logger) *Monitor {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowThreshold
	}
	return &Monitor{
		slowThreshold: slowThreshold,
		logger:        logger,
		now:           time.Now,
	}
}

// RecordDetection records a technology-detection scoring pass.
func (m *Monitor) RecordDetection(duration time.Duration, success bool) {
	m.record(Sample{Operation: "detection", Duration: duration, Success: success})
}

// RecordInsights records an insights generation, flagging whether the
// result came from a fallback path.
func (m *Monitor) RecordInsights(duration time.Duration, success, fallback bool) {
	m.record(Sample{Operation: "insights", Duration: duration, Success: success, Fallback: fallback})
}

func (m *Monitor) record(s Sample) {
	s.Timestamp = m.now()

	m.mu.Lock()
	m.samples = append(m.samples, s)
	if len(m.samples) > maxSamples {
		m.samples = m.samples[len(m.samples)-maxSamples:]
	}
	m.recorded++
	logStats := m.recorded%statsLogInterval == 0
	stats := m.statsLocked()
	m.mu.Unlock()

	if m.logger == nil {
		return
	}
	if s.Duration > m.slowThreshold {
		m.logger.Warn("slow operation",
			"operation", s.Operation,
			"duration", s.Duration,
			"threshold", m.slowThreshold)
	}
	if logStats {
		m.logger.Info("pipeline performance",
			"samples", stats.Samples,
			"success_rate", stats.SuccessRate,
			"fallback_rate", stats.FallbackRate,
			"avg_duration", stats.AvgDuration,
			"slow_count", stats.SlowCount)
	}
}

// Stats computes a snapshot over the current buffer.
func (m *Monitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsLocked()
}

func (m *Monitor) statsLocked() Stats {
	stats := Stats{Samples: len(m.samples)}
	if len(m.samples) == 0 {
		return stats
	}

	var successes, fallbacks, slow int
	var total time.Duration
	for _, s := range m.samples {
		if s.Success {
			successes++
		}
		if s.Fallback {
			fallbacks++
		}
		if s.Duration > m.slowThreshold {
			slow++
		}
		total += s.Duration
	}

	n := float64(len(m.samples))
	stats.SuccessRate = float64(successes) / n
	stats.FallbackRate = float64(fallbacks) / n
	stats.AvgDuration = total / time.Duration(len(m.samples))
	stats.SlowCount = slow
	return stats
}
