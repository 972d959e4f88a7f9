package gqlquery

import (
	"log/slog"

	config "github.com/hanpama/gqlquery/internal/config"
	language "github.com/hanpama/gqlquery/internal/language"
)

type Options struct {
	// MaxDepth bounds the nesting of selection sets, list values, object
	// values and list types. 0 means unlimited.
	MaxDepth int

	// MaxTokens bounds the significant tokens of a document. 0 means
	// unlimited.
	MaxTokens int

	// Logger receives a Debug line per call. Default discards.
	Logger *slog.Logger

	// Tracing subscribes span handlers. An empty OTelEndpoint uses the
	// global tracer provider.
	Tracing      bool
	OTelEndpoint string
	OTelService  string
}

type Option func(*Options)

func WithMaxDepth(n int) Option             { return func(o *Options) { o.MaxDepth = n } }
func WithMaxTokens(n int) Option            { return func(o *Options) { o.MaxTokens = n } }
func WithLogger(logger *slog.Logger) Option { return func(o *Options) { o.Logger = logger } }

// WithTracing reports calls as OpenTelemetry spans. With an endpoint spans
// are exported over OTLP/gRPC; Engine.Close flushes them.
func WithTracing(endpoint, service string) Option {
	return func(o *Options) {
		o.Tracing = true
		o.OTelEndpoint = endpoint
		if service != "" {
			o.OTelService = service
		}
	}
}

func defaultOptions() Options {
	return Options{
		MaxDepth:    language.DefaultMaxDepth,
		Logger:      slog.New(slog.DiscardHandler),
		OTelService: config.DefaultService,
	}
}
