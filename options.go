package pggname

import (
	"log/slog"

	"github.com/pangenome/pggname/digest"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Namer.
type Option func(*namerConfig)

// namerConfig holds configuration for a Namer instance.
type namerConfig struct {
	configFile string
	logger     *slog.Logger
	tracer     trace.Tracer
	meter      metric.Meter
	variant    digest.Variant
	length     int
	workers    int
}

// WithConfigFile sets a YAML configuration file for the Namer.
// Explicit options take precedence over values from the file.
func WithConfigFile(path string) Option {
	return func(c *namerConfig) {
		c.configFile = path
	}
}

// WithLogger sets a custom structured logger.
// If not provided, a default JSON logger is created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *namerConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. The Namer opens a span per
// pipeline stage. If not provided, tracing is a no-op.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *namerConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter. The Namer records the number of
// nodes named and canonical bytes hashed. If not provided, no metrics are
// recorded.
func WithMeter(meter metric.Meter) Option {
	return func(c *namerConfig) {
		c.meter = meter
	}
}

// WithHashVariant selects the SHA-2 family member used for naming.
// The default is digest.SHA256.
func WithHashVariant(variant digest.Variant) Option {
	return func(c *namerConfig) {
		c.variant = variant
	}
}

// WithTruncation sets the output digest length in bytes. The length must
// not exceed the variant's natural digest length; 0 selects the natural
// length. The name is twice as many hex characters.
func WithTruncation(length int) Option {
	return func(c *namerConfig) {
		c.length = length
	}
}

// WithWorkers bounds the number of goroutines used for the parallel sorting
// stages. 0 selects runtime.NumCPU(). The digest fold itself is always
// sequential regardless of this setting.
func WithWorkers(n int) Option {
	return func(c *namerConfig) {
		c.workers = n
	}
}
