package monitoring

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonitorProbesImmediately(t *testing.T) {
	var calls atomic.Int32
	m := NewMonitor("valkey", func(context.Context) bool {
		calls.Add(1)
		return true
	}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, m.Healthy, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, int32(1), calls.Load())
}

func TestMonitorTracksTransitions(t *testing.T) {
	var up atomic.Bool
	m := NewMonitor("service", func(context.Context) bool { return up.Load() }, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	assert.Never(t, m.Healthy, 30*time.Millisecond, 5*time.Millisecond)
	up.Store(true)
	assert.Eventually(t, m.Healthy, time.Second, 5*time.Millisecond)
}

func TestSnapshot(t *testing.T) {
	assert.Nil(t, Snapshot())

	a := NewMonitor("a", nil, 0)
	a.healthy.Store(true)
	b := NewMonitor("b", nil, 0)

	assert.Equal(t, map[string]bool{"a": true, "b": false}, Snapshot(a, b))
	assert.Equal(t, HEALTHCHECK_TIMER, b.interval)
}
