// Package telemetry wires optional OpenTelemetry tracing for Gitea API
// calls. Tracing is disabled unless OTEL_EXPORTER_OTLP_ENDPOINT is set, so
// normal interactive use carries no exporter goroutines.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Provider owns the tracer lifecycle. The zero-value methods are safe on a
// nil provider, which is what callers get when tracing is disabled.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// New creates a tracing provider if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil, nil when tracing is not configured.
func New(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "giteadm"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Provider{
		provider: provider,
		tracer:   provider.Tracer("giteadm/gitea"),
	}, nil
}

// Tracer returns the tracer for API call spans; a no-op tracer when tracing
// is disabled.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer("giteadm/gitea")
	}
	return p.tracer
}

// Shutdown flushes pending spans. Safe on a nil provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
