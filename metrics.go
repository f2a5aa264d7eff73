package tablefilter

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    loadCounter    prometheus.Counter
//	    applyHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordLoad(rows int, duration time.Duration, err error) {
//	    p.loadCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordLoad is called after each dataset load.
	// rows is the number of rows parsed, err is nil if successful.
	RecordLoad(rows int, duration time.Duration, err error)

	// RecordConditionAdd is called after each condition add attempt.
	// err is nil if the condition passed validation.
	RecordConditionAdd(duration time.Duration, err error)

	// RecordApply is called after each filter application.
	// matched is the number of matching rows, total the dataset size.
	RecordApply(matched, total int, duration time.Duration)

	// RecordExport is called after each export operation.
	RecordExport(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordConditionAdd(time.Duration, error)   {}
func (NoopMetricsCollector) RecordApply(int, int, time.Duration)       {}
func (NoopMetricsCollector) RecordExport(int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount         atomic.Int64
	LoadErrors        atomic.Int64
	LoadRows          atomic.Int64
	ConditionCount    atomic.Int64
	ConditionRejected atomic.Int64
	ApplyCount        atomic.Int64
	ApplyMatched      atomic.Int64
	ApplyTotalNanos   atomic.Int64
	ExportCount       atomic.Int64
	ExportErrors      atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(rows int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadRows.Add(int64(rows))
}

// RecordConditionAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConditionAdd(duration time.Duration, err error) {
	b.ConditionCount.Add(1)
	if err != nil {
		b.ConditionRejected.Add(1)
	}
}

// RecordApply implements MetricsCollector.
func (b *BasicMetricsCollector) RecordApply(matched, total int, duration time.Duration) {
	b.ApplyCount.Add(1)
	b.ApplyMatched.Add(int64(matched))
	b.ApplyTotalNanos.Add(duration.Nanoseconds())
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(rows int, duration time.Duration, err error) {
	b.ExportCount.Add(1)
	if err != nil {
		b.ExportErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:         b.LoadCount.Load(),
		LoadErrors:        b.LoadErrors.Load(),
		LoadRows:          b.LoadRows.Load(),
		ConditionCount:    b.ConditionCount.Load(),
		ConditionRejected: b.ConditionRejected.Load(),
		ApplyCount:        b.ApplyCount.Load(),
		ApplyMatched:      b.ApplyMatched.Load(),
		ApplyAvgNanos:     b.getAvgApplyNanos(),
		ExportCount:       b.ExportCount.Load(),
		ExportErrors:      b.ExportErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgApplyNanos() int64 {
	count := b.ApplyCount.Load()
	if count == 0 {
		return 0
	}
	return b.ApplyTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount         int64
	LoadErrors        int64
	LoadRows          int64
	ConditionCount    int64
	ConditionRejected int64
	ApplyCount        int64
	ApplyMatched      int64
	ApplyAvgNanos     int64
	ExportCount       int64
	ExportErrors      int64
}
