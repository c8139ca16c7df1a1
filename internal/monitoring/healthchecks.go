package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const HEALTHCHECK_TIMER = 15 * time.Second

// CheckFunc reports whether a dependency is reachable.
type CheckFunc func(ctx context.Context) bool

// Monitor probes a dependency on a ticker and publishes the last answer.
type Monitor struct {
	name     string
	check    CheckFunc
	interval time.Duration
	healthy  atomic.Bool
}

func NewMonitor(name string, check CheckFunc, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = HEALTHCHECK_TIMER
	}
	return &Monitor{name: name, check: check, interval: interval}
}

func (m *Monitor) Name() string { return m.name }

func (m *Monitor) Healthy() bool { return m.healthy.Load() }

func (m *Monitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	isHealthy := m.check(probeCtx)
	if m.healthy.Swap(isHealthy) != isHealthy {
		if isHealthy {
			slog.Info("[HealthCheck] Dependency recovered", slog.String("dependency", m.name))
		} else {
			slog.Warn("[HealthCheck] Dependency is unhealthy", slog.String("dependency", m.name))
		}
	}
}

// Run probes once immediately, then every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

// Snapshot maps each monitor name to its last known state.
func Snapshot(monitors ...*Monitor) map[string]bool {
	if len(monitors) == 0 {
		return nil
	}
	out := make(map[string]bool, len(monitors))
	for _, m := range monitors {
		out[m.Name()] = m.Healthy()
	}
	return out
}
