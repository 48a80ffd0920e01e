package param

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// RecorderOption configures a Recorder.
type RecorderOption func(*recorderConfig)

type recorderConfig struct {
	logger *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter
}

// WithLogger sets the logger used for rejected values.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) RecorderOption {
	return func(c *recorderConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. Each test runs in its own span.
func WithTracer(tracer trace.Tracer) RecorderOption {
	return func(c *recorderConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter used to count test outcomes.
func WithMeter(meter metric.Meter) RecorderOption {
	return func(c *recorderConfig) {
		c.meter = meter
	}
}

// Recorder runs parameter tests with logging, tracing and metrics attached.
// It is safe for concurrent use.
type Recorder struct {
	logger *slog.Logger
	tracer trace.Tracer
	count  metric.Int64Counter
}

// NewRecorder creates a Recorder. Telemetry that is not configured is skipped.
func NewRecorder(opts ...RecorderOption) (*Recorder, error) {
	cfg := recorderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	r := &Recorder{
		logger: cfg.logger,
		tracer: cfg.tracer,
	}

	if cfg.meter != nil {
		count, err := cfg.meter.Int64Counter(
			"param.test.count",
			metric.WithDescription("Number of parameter tests by outcome"),
			metric.WithUnit("{test}"),
		)
		if err != nil {
			return nil, NewInvalidArgumentError("NewRecorder", fmt.Errorf("failed to create counter: %w", err))
		}
		r.count = count
	}

	return r, nil
}

// Test runs v.Test(value) and records the outcome.
func (r *Recorder) Test(ctx context.Context, v Validator, value any) Result {
	var span trace.Span
	if r.tracer != nil {
		ctx, span = r.tracer.Start(ctx, "param.test")
		defer span.End()
	}

	res := v.Test(value)
	attrs := Attributes(v.Name(), res)

	if span != nil {
		span.SetAttributes(attrs...)
		if res.OK() {
			span.SetStatus(codes.Ok, "")
		} else {
			span.SetStatus(codes.Error, res.String())
		}
	}

	if r.count != nil {
		r.count.Add(ctx, 1, metric.WithAttributes(attrs...))
	}

	if !res.OK() {
		r.logger.DebugContext(ctx, "parameter rejected value",
			slog.String("parameter", v.Name()),
			slog.Any("result", res))
	}

	return res
}

// Attributes describes a test outcome as OpenTelemetry attributes.
func Attributes(name string, res Result) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("param.name", name),
		attribute.Bool("param.ok", res.OK()),
	}
	if d, failed := res.Diagnostic(); failed {
		attrs = append(attrs, attribute.String("param.diagnostic", string(d.Kind)))
	}
	return attrs
}
