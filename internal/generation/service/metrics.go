package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks upstream generation calls
type Metrics struct {
	upstreamCalls   int64
	upstreamErrors  int64
	upstreamLatency int64 // Total latency in nanoseconds
	rejected        int64 // validation failures, never sent upstream
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		upstreamCalls:   atomic.LoadInt64(&globalMetrics.upstreamCalls),
		upstreamErrors:  atomic.LoadInt64(&globalMetrics.upstreamErrors),
		upstreamLatency: atomic.LoadInt64(&globalMetrics.upstreamLatency),
		rejected:        atomic.LoadInt64(&globalMetrics.rejected),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.upstreamCalls, 0)
	atomic.StoreInt64(&globalMetrics.upstreamErrors, 0)
	atomic.StoreInt64(&globalMetrics.upstreamLatency, 0)
	atomic.StoreInt64(&globalMetrics.rejected, 0)
}

func recordUpstreamCall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.upstreamCalls, 1)
	atomic.AddInt64(&globalMetrics.upstreamLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.upstreamErrors, 1)
	}
}

func recordRejected() {
	atomic.AddInt64(&globalMetrics.rejected, 1)
}

func (m Metrics) UpstreamCalls() int64  { return m.upstreamCalls }
func (m Metrics) UpstreamErrors() int64 { return m.upstreamErrors }
func (m Metrics) Rejected() int64       { return m.rejected }

// AverageUpstreamLatency returns the average latency in milliseconds
func (m Metrics) AverageUpstreamLatency() float64 {
	if m.upstreamCalls == 0 {
		return 0
	}
	avgNs := float64(m.upstreamLatency) / float64(m.upstreamCalls)
	return avgNs / 1e6
}

// UpstreamErrorRate returns the error rate as a percentage
func (m Metrics) UpstreamErrorRate() float64 {
	if m.upstreamCalls == 0 {
		return 0
	}
	return float64(m.upstreamErrors) / float64(m.upstreamCalls) * 100
}

// Snapshot is the JSON form exposed on the health endpoint.
type Snapshot struct {
	UpstreamCalls    int64   `json:"upstream_calls"`
	UpstreamErrors   int64   `json:"upstream_errors"`
	AvgLatencyMillis float64 `json:"avg_latency_ms"`
	ErrorRatePercent float64 `json:"error_rate_percent"`
	Rejected         int64   `json:"rejected"`
}

func (m Metrics) Snapshot() Snapshot {
	return Snapshot{
		UpstreamCalls:    m.upstreamCalls,
		UpstreamErrors:   m.upstreamErrors,
		AvgLatencyMillis: m.AverageUpstreamLatency(),
		ErrorRatePercent: m.UpstreamErrorRate(),
		Rejected:         m.rejected,
	}
}
