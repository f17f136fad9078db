package calculator

import (
	"context"
	"time"

	"go.trai.ch/mlpot/internal/core/ports"
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger used for cache and pipeline diagnostics.
func WithLogger(l ports.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer used to record evaluation spans.
func WithTracer(t ports.Tracer) Option {
	return func(c *Calculator) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithMetrics sets the recorder for cache and pipeline metrics.
func WithMetrics(m ports.Metrics) Option {
	return func(c *Calculator) {
		if m != nil {
			c.metrics = m
		}
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End()                     {}
func (nopSpan) RecordError(error)        {}
func (nopSpan) SetAttribute(string, any) {}

type nopMetrics struct{}

func (nopMetrics) CacheHit()                      {}
func (nopMetrics) CacheMiss()                     {}
func (nopMetrics) ObserveRecompute(time.Duration) {}
func (nopMetrics) RecordError(string)             {}
