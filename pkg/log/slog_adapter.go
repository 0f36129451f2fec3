package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes resolution events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("category", event.Category.String()),
		slog.String("source", event.Source.String()),
		slog.Int("api_level", int(event.APILevel)),
		slog.String("input", event.Input),
	}

	if event.Base != "" {
		attrs = append(attrs, slog.String("base", event.Base))
	}
	if event.Profile != "" {
		attrs = append(attrs, slog.String("profile", event.Profile))
	}

	switch {
	case event.Resolution != nil:
		attrs = append(attrs,
			slog.String("canonical", event.Resolution.Canonical),
			slog.Int("density_dpi", event.Resolution.Metrics.DensityDpi),
		)
		if event.Resolution.Duration > 0 {
			attrs = append(attrs, slog.Duration("duration", event.Resolution.Duration))
		}
	case event.Rejection != nil:
		attrs = append(attrs,
			slog.String("error_kind", event.Rejection.Kind),
			slog.String("error_msg", event.Rejection.Message),
		)
		if event.Rejection.Token != "" {
			attrs = append(attrs, slog.String("token", event.Rejection.Token))
		}
		if event.Rejection.Dimension != "" {
			attrs = append(attrs, slog.String("dimension", event.Rejection.Dimension))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "qualifiers", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
