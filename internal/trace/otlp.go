// Package trace wires OpenTelemetry for ghprofile. Export is enabled only
// when OTEL_EXPORTER_OTLP_ENDPOINT is set.
package trace

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultServiceName is used when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "ghprofile"

// tracesPath is the OTLP/HTTP path for trace export.
const tracesPath = "/v1/traces"

// Provider owns the tracer provider installed by Setup.
type Provider struct {
	sdk     *sdktrace.TracerProvider // nil when disabled
	tracer  oteltrace.TracerProvider
	enabled bool
}

// Setup installs a global tracer provider exporting to the OTLP endpoint
// named by OTEL_EXPORTER_OTLP_ENDPOINT. getenv is usually os.Getenv.
// Without an endpoint it returns a disabled no-op provider.
func Setup(ctx context.Context, getenv func(string) string) (*Provider, error) {
	endpoint := getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider()}, nil
	}

	opts, err := endpointOptions(endpoint)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return &Provider{sdk: tp, tracer: tp, enabled: true}, nil
}

// endpointOptions accepts both a base URL ("http://collector:4318") and a
// bare "host:port". Like the SDK's own handling of the variable, the
// signal path /v1/traces is appended to a URL. A bare endpoint is assumed
// to be a local plaintext collector.
func endpointOptions(endpoint string) ([]otlptracehttp.Option, error) {
	if !strings.Contains(endpoint, "://") {
		return []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		}, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT: %w", err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + tracesPath
	return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(u.String())}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.enabled
}

// TracerProvider returns the provider spans should be recorded on.
func (p *Provider) TracerProvider() oteltrace.TracerProvider {
	if p == nil || p.tracer == nil {
		return noop.NewTracerProvider()
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.sdk == nil {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
