package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/builderportfolio/portfolio-system/internal/metrics"
)

type options struct {
	metrics     *metrics.Metrics
	strictRoles bool
}

// Option customises a service at construction time.
type Option func(*options)

// WithMetrics records operation outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithStrictRoles makes registration reject role selectors other than the
// manager and builder ones instead of treating them as builders.
func WithStrictRoles(strict bool) Option {
	return func(o *options) { o.strictRoles = strict }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

const (
	componentAccounts = "accounts"
	componentProjects = "projects"
)

// loggerFrom prefers a logger attached to ctx (e.g. one tagged with the
// acting user) over the service default. Either way the entry carries the
// service component.
func loggerFrom(ctx context.Context, fallback zerolog.Logger, component string) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l.With().Str("component", component).Logger()
	}
	return fallback
}
