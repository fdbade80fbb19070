// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for pipeline monitoring.
// Counters are lock-free on the hot path; registration and snapshots take
// the registry lock.

package control

import (
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a monotonically increasing metric.
type Counter struct {
	v atomic.Int64
}

// Add increments the counter by delta.
func (c *Counter) Add(delta int64) { c.v.Add(delta) }

// Load returns the current value.
func (c *Counter) Load() int64 { return c.v.Load() }

// MetricsRegistry holds named counters.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]*Counter
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]*Counter),
	}
}

// Counter returns the named counter, creating it on first use.
func (mr *MetricsRegistry) Counter(name string) *Counter {
	mr.mu.RLock()
	c, ok := mr.counters[name]
	mr.mu.RUnlock()
	if ok {
		return c
	}
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if c, ok = mr.counters[name]; ok {
		return c
	}
	c = &Counter{}
	mr.counters[name] = c
	mr.updated = time.Now()
	return c
}

// Snapshot returns the current value of every counter.
func (mr *MetricsRegistry) Snapshot() map[string]int64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]int64, len(mr.counters))
	for k, c := range mr.counters {
		out[k] = c.Load()
	}
	return out
}
