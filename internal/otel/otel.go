package otel

import (
	"context"
	"sync"

	eventbus "github.com/hanpama/gqlquery/internal/eventbus"
	events "github.com/hanpama/gqlquery/internal/events"
	reqid "github.com/hanpama/gqlquery/internal/reqid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const instrumentation = "github.com/hanpama/gqlquery"

// Setup attaches span subscribers to bus. If endpoint is empty, spans go to
// the global tracer provider, which records nothing unless the host program
// installed one. Otherwise an OTLP/gRPC exporter is created for endpoint and
// the returned function flushes and stops it.
func Setup(endpoint, service string, bus *eventbus.Bus) (func(context.Context) error, error) {
	if endpoint == "" {
		newSubscriber(otel.Tracer(instrumentation)).register(bus)
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	newSubscriber(tp.Tracer(instrumentation)).register(bus)

	return tp.Shutdown, nil
}

type subscriber struct {
	tracer     trace.Tracer
	querySpans sync.Map // rid -> trace.Span
	parseSpans sync.Map // rid -> trace.Span
}

func newSubscriber(tracer trace.Tracer) *subscriber {
	return &subscriber{tracer: tracer}
}

func (s *subscriber) start(ctx context.Context, spans *sync.Map, name string, attrs ...attribute.KeyValue) {
	rid, _ := reqid.FromContext(ctx)
	_, span := s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	spans.Store(rid, span)
}

func (s *subscriber) finish(ctx context.Context, spans *sync.Map) (trace.Span, bool) {
	rid, _ := reqid.FromContext(ctx)
	v, ok := spans.LoadAndDelete(rid)
	if !ok {
		return nil, false
	}
	return v.(trace.Span), true
}

func (s *subscriber) register(bus *eventbus.Bus) {
	eventbus.Subscribe(bus, func(ctx context.Context, e events.ValidateStart) {
		s.start(ctx, &s.querySpans, "graphql.validate", attribute.String("graphql.document.path", e.Path))
	})

	eventbus.Subscribe(bus, func(ctx context.Context, e events.ValidateFinish) {
		span, ok := s.finish(ctx, &s.querySpans)
		if !ok {
			return
		}
		span.SetAttributes(
			attribute.Int("graphql.diagnostic_count", e.Diagnostics),
			attribute.Bool("graphql.syntax_error", e.Syntax),
		)
		if e.Diagnostics > 0 {
			span.SetStatus(codes.Error, "document is invalid")
		}
		span.End()
	})

	eventbus.Subscribe(bus, func(ctx context.Context, e events.FormatStart) {
		s.start(ctx, &s.querySpans, "graphql.format", attribute.Int("graphql.document.size", e.Size))
	})

	eventbus.Subscribe(bus, func(ctx context.Context, e events.FormatFinish) {
		span, ok := s.finish(ctx, &s.querySpans)
		if !ok {
			return
		}
		span.SetAttributes(attribute.Bool("graphql.format.fallback", e.Fallback))
		if e.Fallback {
			span.SetStatus(codes.Error, "document did not parse")
		}
		span.End()
	})

	eventbus.Subscribe(bus, func(ctx context.Context, e events.ParseStart) {
		// Parsing happens inside a validate or format call for the same
		// request, so its span nests under that one.
		rid, _ := reqid.FromContext(ctx)
		if v, ok := s.querySpans.Load(rid); ok {
			ctx = trace.ContextWithSpan(ctx, v.(trace.Span))
		}
		s.start(ctx, &s.parseSpans, "graphql.parse",
			attribute.String("graphql.document.path", e.Path),
			attribute.Int("graphql.document.size", e.Size),
		)
	})

	eventbus.Subscribe(bus, func(ctx context.Context, e events.ParseFinish) {
		span, ok := s.finish(ctx, &s.parseSpans)
		if !ok {
			return
		}
		span.SetAttributes(attribute.Int("graphql.diagnostic_count", e.Diagnostics))
		if e.Diagnostics > 0 {
			span.SetStatus(codes.Error, "syntax error")
		}
		span.End()
	})
}
