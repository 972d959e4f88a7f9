// Package gqlquery validates and formats GraphQL executable documents without
// a schema.
//
// ValidateQuery and FormatQuery are pure functions over text. An Engine
// applies configured parsing limits and reports every call on its event bus,
// where slog and OpenTelemetry subscribers turn calls into log lines and
// spans.
package gqlquery

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/vektah/gqlparser/v2/gqlerror"

	config "github.com/hanpama/gqlquery/internal/config"
	eventbus "github.com/hanpama/gqlquery/internal/eventbus"
	events "github.com/hanpama/gqlquery/internal/events"
	formatter "github.com/hanpama/gqlquery/internal/formatter"
	language "github.com/hanpama/gqlquery/internal/language"
	otel "github.com/hanpama/gqlquery/internal/otel"
	reqid "github.com/hanpama/gqlquery/internal/reqid"
	validator "github.com/hanpama/gqlquery/internal/validator"
)

// ValidateQuery parses query and checks it against the schema-independent
// validation rules. It returns nil when the query is valid. When parsing
// fails the syntax errors are returned and no rule runs. path labels the
// diagnostics through their "file" extension and may be empty.
func ValidateQuery(query, path string) gqlerror.List {
	doc, errs := language.ParseQuery(query, path)
	if errs != nil {
		return errs
	}
	return validator.Validate(doc)
}

// FormatQuery returns query in canonical form, or query unchanged when it
// does not parse. Validation errors do not prevent formatting.
func FormatQuery(query string) string {
	doc, errs := language.ParseQuery(query, "")
	if errs != nil {
		return query
	}
	return formatter.Format(doc)
}

// Engine validates and formats queries with configured limits. It is safe
// for concurrent use.
type Engine struct {
	opts     Options
	parse    []language.Option
	bus      *eventbus.Bus
	shutdown func(context.Context) error
}

// New creates an Engine. It fails only when tracing is requested and the
// exporter cannot be created.
func New(opts ...Option) (*Engine, error) {
	op := defaultOptions()
	for _, f := range opts {
		f(&op)
	}
	e := &Engine{
		opts: op,
		parse: []language.Option{
			language.WithMaxDepth(op.MaxDepth),
			language.WithMaxTokens(op.MaxTokens),
		},
		bus:      eventbus.New(),
		shutdown: func(context.Context) error { return nil },
	}
	subscribeLogger(e.bus, op.Logger)
	if op.Tracing {
		shutdown, err := otel.Setup(op.OTelEndpoint, op.OTelService, e.bus)
		if err != nil {
			return nil, fmt.Errorf("failed to set up tracing: %w", err)
		}
		e.shutdown = shutdown
	}
	return e, nil
}

// Config holds engine settings loaded by LoadConfig.
type Config = config.Config

// LoadConfig reads settings from defaults, the YAML file at path (skipped
// when empty) and GQLQUERY_ environment variables, in increasing precedence.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// NewFromConfig creates an Engine from cfg, logging to stderr at the
// configured level. opts are applied after the settings taken from cfg and
// override them.
func NewFromConfig(cfg *Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := cfg.SlogLevel()
	base := []Option{
		WithMaxDepth(cfg.MaxDepth),
		WithMaxTokens(cfg.MaxTokens),
		WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))),
	}
	if cfg.OTel.Endpoint != "" {
		base = append(base, WithTracing(cfg.OTel.Endpoint, cfg.OTel.Service))
	}
	return New(append(base, opts...)...)
}

// ValidateQuery behaves like the package-level ValidateQuery under the
// engine's limits.
func (e *Engine) ValidateQuery(ctx context.Context, query, path string) gqlerror.List {
	ctx, _ = reqid.NewContext(ctx)
	start := time.Now()
	eventbus.Publish(ctx, e.bus, events.ValidateStart{Path: path})

	doc, errs := e.parseQuery(ctx, query, path)
	syntax := errs != nil
	if !syntax {
		errs = validator.Validate(doc)
	}

	eventbus.Publish(ctx, e.bus, events.ValidateFinish{
		Path:        path,
		Diagnostics: len(errs),
		Syntax:      syntax,
		Duration:    time.Since(start),
	})
	return errs
}

// FormatQuery behaves like the package-level FormatQuery under the engine's
// limits. Input over the limits is returned unchanged.
func (e *Engine) FormatQuery(ctx context.Context, query string) string {
	ctx, _ = reqid.NewContext(ctx)
	start := time.Now()
	eventbus.Publish(ctx, e.bus, events.FormatStart{Size: len(query)})

	out := query
	doc, errs := e.parseQuery(ctx, query, "")
	if errs == nil {
		out = formatter.Format(doc)
	}

	eventbus.Publish(ctx, e.bus, events.FormatFinish{Fallback: errs != nil, Duration: time.Since(start)})
	return out
}

// Close flushes and stops the span exporter, if any.
func (e *Engine) Close(ctx context.Context) error {
	return e.shutdown(ctx)
}

func (e *Engine) parseQuery(ctx context.Context, query, path string) (*language.QueryDocument, gqlerror.List) {
	start := time.Now()
	eventbus.Publish(ctx, e.bus, events.ParseStart{Path: path, Size: len(query)})
	doc, errs := language.ParseQuery(query, path, e.parse...)
	eventbus.Publish(ctx, e.bus, events.ParseFinish{Path: path, Diagnostics: len(errs), Duration: time.Since(start)})
	return doc, errs
}
