package param

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRecorder_Defaults(t *testing.T) {
	r, err := NewRecorder()
	require.NoError(t, err)

	res := r.Test(context.Background(), MustNew("n").String(), "x")
	assert.True(t, res.OK())
}

func TestRecorder_Tracer(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer tp.Shutdown(context.Background())

	r, err := NewRecorder(WithTracer(tp.Tracer("test")))
	require.NoError(t, err)

	p := MustNew("port").Integer().Max(10)
	assert.True(t, r.Test(context.Background(), p, 5).OK())
	assert.False(t, r.Test(context.Background(), p, 11).OK())

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "param.test", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("param.name", "port"))
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("param.ok", true))

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "value 11 is greater than maximum 10", spans[1].Status().Description)
	assert.Contains(t, spans[1].Attributes(), attribute.Bool("param.ok", false))
	assert.Contains(t, spans[1].Attributes(), attribute.String("param.diagnostic", "valueTooBig"))
}

func TestRecorder_Meter(t *testing.T) {
	r, err := NewRecorder(WithMeter(noop.NewMeterProvider().Meter("test")))
	require.NoError(t, err)
	require.NotNil(t, r.count)

	res := r.Test(context.Background(), MustNew("n").Boolean(), "no")
	assert.False(t, res.OK())
}

func TestRecorder_LogsRejections(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r, err := NewRecorder(WithLogger(logger))
	require.NoError(t, err)

	r.Test(context.Background(), MustNew("mode").OneOf("a", "b"), "a")
	assert.Empty(t, buf.String(), "accepted values are not logged")

	r.Test(context.Background(), MustNew("mode").OneOf("a", "b"), "c")
	out := buf.String()
	assert.Contains(t, out, "parameter rejected value")
	assert.Contains(t, out, "parameter=mode")
	assert.Contains(t, out, "result.diagnostic.kind=notEnumValue")
}

func TestAttributes(t *testing.T) {
	assert.Equal(t, []attribute.KeyValue{
		attribute.String("param.name", "n"),
		attribute.Bool("param.ok", true),
	}, Attributes("n", Accept()))

	assert.Equal(t, []attribute.KeyValue{
		attribute.String("param.name", "n"),
		attribute.Bool("param.ok", false),
		attribute.String("param.diagnostic", "isUndefined"),
	}, Attributes("n", Reject(Diagnostic{Kind: KindUndefined})))
}
