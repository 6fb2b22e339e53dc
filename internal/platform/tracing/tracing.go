// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

// Package tracing configures the OpenTelemetry tracer provider.
//
// Services obtain a tracer with [Tracer] and open spans around catalog
// resolution and personalization lookups. When tracing is disabled the
// global no-op provider is left in place and spans cost nothing.
package tracing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/hidesh/movieapp"

// Settings controls provider construction.
type Settings struct {
	Enabled     bool
	ServiceName string
	Version     string
	Environment string
	SampleRatio float64
}

// Init installs a global tracer provider and returns its shutdown function.
// The returned function is always safe to call.
func Init(ctx context.Context, settings Settings, logger *slog.Logger) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	if !settings.Enabled {
		return noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(settings.ServiceName),
			semconv.ServiceVersionKey.String(settings.Version),
			attribute.String("deployment.environment", settings.Environment),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("tracing: resource init failed: %w", err)
	}

	exporter, err := stdouttrace.New()
	if err != nil {
		return noop, fmt.Errorf("tracing: exporter init failed: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(settings.SampleRatio))),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracing_initialized",
		slog.String("service", settings.ServiceName),
		slog.Float64("sample_ratio", settings.SampleRatio),
	)

	return provider.Shutdown, nil
}

// Tracer returns the application tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
