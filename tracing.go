package routedir

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/routedir-dev/routedir/pkg/routes"
)

// Default tracer name for registration spans.
const defaultTracerName = "routedir"

// TracingConfig configures registration tracing.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "routedir").
	TracerName string

	// Filter determines which descriptors get their own span.
	// If nil, all descriptors are traced.
	Filter func(d *routes.Descriptor) bool

	// AttributeExtractor extracts custom attributes per descriptor.
	AttributeExtractor func(d *routes.Descriptor) []attribute.KeyValue
}

// TracingOption configures registration tracing.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithDescriptorFilter sets a filter for per-descriptor spans.
func WithDescriptorFilter(filter func(d *routes.Descriptor) bool) TracingOption {
	return func(c *TracingConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(d *routes.Descriptor) []attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) {
		c.AttributeExtractor = extractor
	}
}

// Tracing traces registration passes: one span per CreateRouter call with
// a child span per registered descriptor.
//
// The tracer comes from the global OpenTelemetry tracer provider.
// Configure the provider in main() before registering routes:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
//
//	tr := routedir.NewTracing(routedir.WithTracerName("my-app"))
type Tracing struct {
	tracer trace.Tracer
	filter func(d *routes.Descriptor) bool
	attrs  func(d *routes.Descriptor) []attribute.KeyValue
}

// NewTracing creates a Tracing from the global tracer provider.
func NewTracing(opts ...TracingOption) *Tracing {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	return &Tracing{
		tracer: otel.Tracer(config.TracerName),
		filter: config.Filter,
		attrs:  config.AttributeExtractor,
	}
}

// start opens the root span for a registration pass.
func (t *Tracing) start(ctx context.Context, dir string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "routedir.create_router",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("routedir.dir", dir)))
}

// descriptorSpan opens a child span for one descriptor, or returns nil
// when the filter excludes it.
func (t *Tracing) descriptorSpan(ctx context.Context, d *routes.Descriptor) trace.Span {
	if t.filter != nil && !t.filter(d) {
		return nil
	}

	attrs := []attribute.KeyValue{
		attribute.String("routedir.path", d.Path),
		attribute.String("routedir.kind", d.Kind()),
		attribute.String("routedir.file", d.FilePath),
	}
	if t.attrs != nil {
		attrs = append(attrs, t.attrs(d)...)
	}

	_, span := t.tracer.Start(ctx, "routedir.register "+d.Path,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...))
	return span
}
