package api

import (
	"sync"
	"time"
)

// RouteMetrics aggregates request metrics for a specific route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsCollector collects and aggregates request metrics in memory
type MetricsCollector struct {
	mu     sync.RWMutex
	routes map[string]*RouteMetrics
}

var (
	metricsOnce sync.Once
	metrics     *MetricsCollector
)

// GetMetrics returns the process-wide metrics collector
func GetMetrics() *MetricsCollector {
	metricsOnce.Do(func() {
		metrics = &MetricsCollector{routes: make(map[string]*RouteMetrics)}
	})
	return metrics
}

// Record adds a completed request to the per-route aggregates
func (m *MetricsCollector) Record(method, path string, status int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := method + " " + path
	route, ok := m.routes[key]
	if !ok {
		route = &RouteMetrics{Method: method, Path: path}
		m.routes[key] = route
	}

	route.Count++
	if status >= 400 {
		route.ErrorCount++
	}
	route.TotalTime += duration
	route.AvgTime = route.TotalTime / time.Duration(route.Count)
	if duration > route.MaxTime {
		route.MaxTime = duration
	}
	route.LastRequest = time.Now()
}

// Snapshot returns a copy of the aggregated route metrics
func (m *MetricsCollector) Snapshot() []RouteMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]RouteMetrics, 0, len(m.routes))
	for _, route := range m.routes {
		out = append(out, *route)
	}
	return out
}
