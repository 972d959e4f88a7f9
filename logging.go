package gqlquery

import (
	"context"
	"log/slog"

	eventbus "github.com/hanpama/gqlquery/internal/eventbus"
	events "github.com/hanpama/gqlquery/internal/events"
	reqid "github.com/hanpama/gqlquery/internal/reqid"
)

// subscribeLogger writes one Debug line per finished call.
func subscribeLogger(bus *eventbus.Bus, logger *slog.Logger) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	eventbus.Subscribe(bus, func(ctx context.Context, e events.ParseFinish) {
		rid, _ := reqid.FromContext(ctx)
		logger.DebugContext(ctx, "parsed query",
			"request_id", rid, "path", e.Path, "diagnostics", e.Diagnostics, "duration", e.Duration)
	})
	eventbus.Subscribe(bus, func(ctx context.Context, e events.ValidateFinish) {
		rid, _ := reqid.FromContext(ctx)
		logger.DebugContext(ctx, "validated query",
			"request_id", rid, "path", e.Path, "diagnostics", e.Diagnostics, "syntax_error", e.Syntax, "duration", e.Duration)
	})
	eventbus.Subscribe(bus, func(ctx context.Context, e events.FormatFinish) {
		rid, _ := reqid.FromContext(ctx)
		logger.DebugContext(ctx, "formatted query",
			"request_id", rid, "fallback", e.Fallback, "duration", e.Duration)
	})
}
