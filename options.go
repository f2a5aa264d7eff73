package tablefilter

import (
	"log/slog"

	"github.com/hupe1980/tablefilter/codec"
	"github.com/hupe1980/tablefilter/filter"
	"github.com/hupe1980/tablefilter/loader"
)

type options struct {
	codec            codec.Codec
	comparePolicy    filter.ComparePolicy
	maxConditions    int
	maxFileSize      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Session constructor behavior.
type Option func(*options)

// WithCodec configures the codec used for JSON parsing and export.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithComparePolicy configures text comparison for filter evaluation.
// The default policy is exact: case-sensitive and untrimmed.
//
// Example:
//
//	s := tablefilter.New(tablefilter.WithComparePolicy(filter.ComparePolicy{
//	    CaseInsensitive: true,
//	    TrimSpace:       true,
//	}))
func WithComparePolicy(p filter.ComparePolicy) Option {
	return func(o *options) {
		o.comparePolicy = p
	}
}

// WithMaxConditions overrides the filter-set capacity.
// Values below 1 keep the default of filter.DefaultMaxConditions.
func WithMaxConditions(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxConditions = n
		}
	}
}

// WithMaxFileSize overrides the upload size cap in bytes.
// Values below 1 keep the default of loader.DefaultMaxFileSize.
func WithMaxFileSize(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxFileSize = n
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &tablefilter.BasicMetricsCollector{}
//	s := tablefilter.New(tablefilter.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Applies: %d, Avg latency: %dns\n", stats.ApplyCount, stats.ApplyAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := tablefilter.NewJSONLogger(slog.LevelInfo)
//	s := tablefilter.New(tablefilter.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		comparePolicy:    filter.DefaultComparePolicy(),
		maxConditions:    filter.DefaultMaxConditions,
		maxFileSize:      loader.DefaultMaxFileSize,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
