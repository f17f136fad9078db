package telemetry_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/mlpot/internal/adapters/telemetry"
	"go.trai.ch/mlpot/internal/core/ports"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return sr
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "calculate",
		ports.WithAttribute("mlpot.properties", []string{"energy", "forces"}),
		ports.WithAttribute("mlpot.atoms", 3),
	)
	span.SetAttribute("mlpot.cached", true)
	span.SetAttribute("mlpot.energy", -1.5)
	span.SetAttribute("mlpot.step", time.Millisecond)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "calculate", spans[0].Name())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, []string{"energy", "forces"}, attrs["mlpot.properties"].AsStringSlice())
	assert.Equal(t, int64(3), attrs["mlpot.atoms"].AsInt64())
	assert.True(t, attrs["mlpot.cached"].AsBool())
	assert.InDelta(t, -1.5, attrs["mlpot.energy"].AsFloat64(), 1e-15)
	assert.Equal(t, "1ms", attrs["mlpot.step"].AsString())
}

func TestOTelTracer_Nesting(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	ctx, parent := tracer.Start(t.Context(), "calculate")
	_, child := tracer.Start(ctx, "forces.analytic")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "forces.analytic", spans[0].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(t.Context(), "calculate")
	span.RecordError(nil)
	span.RecordError(errors.New("descriptor failed"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "descriptor failed", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "calculate", ports.WithAttribute("k", "v"))
	assert.Equal(t, t.Context(), ctx)
	assert.NotPanics(t, func() {
		span.SetAttribute("k", 1)
		span.RecordError(errors.New("x"))
		span.End()
	})
}

func TestSetupStdout(t *testing.T) {
	buf := &bytes.Buffer{}
	shutdown, err := telemetry.SetupStdout(buf)
	require.NoError(t, err)

	tracer := telemetry.NewOTelTracer("test")
	_, span := tracer.Start(t.Context(), "calculate")
	span.SetAttribute("mlpot.cached", false)
	span.End()

	require.NoError(t, shutdown(t.Context()))
	assert.Contains(t, buf.String(), `"Name": "calculate"`)
	assert.Contains(t, buf.String(), "mlpot.cached")
}
