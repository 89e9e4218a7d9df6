// Package telemetry exports listing interactions as OTLP spans.
package telemetry

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope for interaction spans.
const TracerName = "jobportal/listing"

// Span names, one per listing interaction.
const (
	SpanSearch   = "listing.search"
	SpanViewMode = "listing.view_mode"
	SpanSelect   = "listing.select"
	SpanDismiss  = "listing.dismiss"
)

// Provider owns the tracer provider. The zero value and a nil *Provider are
// usable and record nothing.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Setup creates an OTLP/HTTP exporter for endpoint, either host:port or a
// full URL. An empty endpoint returns a disabled provider.
func Setup(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return &Provider{}, nil
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure()}
	if strings.Contains(endpoint, "://") {
		opts = []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "otlp exporter")
	}
	return NewWithProcessor(sdktrace.NewBatchSpanProcessor(exporter), serviceName), nil
}

// NewWithProcessor builds a provider around an arbitrary span processor.
func NewWithProcessor(sp sdktrace.SpanProcessor, serviceName string) *Provider {
	if serviceName == "" {
		serviceName = "jobportal"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sp),
		sdktrace.WithResource(res),
	)
	return &Provider{
		provider: tp,
		tracer:   tp.Tracer(TracerName),
	}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Tracer returns the interaction tracer, a no-op one when disabled.
func (p *Provider) Tracer() oteltrace.Tracer {
	if !p.Enabled() {
		return noop.NewTracerProvider().Tracer(TracerName)
	}
	return p.tracer
}

// Record emits a zero-length span for one interaction. Attribute keys are
// placed under the jobportal.* namespace.
func (p *Provider) Record(ctx context.Context, name string, attrs map[string]any) {
	if !p.Enabled() {
		return
	}
	_, span := p.tracer.Start(ctx, name)
	span.SetAttributes(toAttributes(attrs)...)
	span.End()
}

func toAttributes(attrs map[string]any) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		key := "jobportal." + k
		switch v := v.(type) {
		case string:
			out = append(out, attribute.String(key, v))
		case int:
			out = append(out, attribute.Int(key, v))
		case bool:
			out = append(out, attribute.Bool(key, v))
		default:
			out = append(out, attribute.String(key, "?"))
		}
	}
	return out
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
