package pg

import (
	"context"
	"strings"

	"todotrack/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one executed statement
type QueryEvent struct {
	SQL       string
	Args      []any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives every statement run through the store adapters
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs statements at debug, slow ones at warn and failures at error.
// It ignores the root level so SERVICE_PGSQL_LOG_SQL works with LOG_LEVEL=info.
func Tracer(base logger.Logger) QueryTracer {
	return zlTracer{log: base.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type zlTracer struct{ log logger.Logger }

func (z zlTracer) OnQuery(ctx context.Context, ev QueryEvent) {
	evt := z.log.Debug()
	switch {
	case ev.Err != nil:
		evt = z.log.Error().Err(ev.Err)
	case ev.Slow:
		evt = z.log.Warn()
	}
	if id, _ := ctx.Value(traceKey{}).(string); id != "" {
		evt = evt.Str("trace", id)
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Int("args", len(ev.Args)).
		Msg("pg query")
}

type traceKey struct{}

// WithTrace labels statements issued under ctx in the tracer output
func WithTrace(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, traceKey{}, label)
}

// compact folds runs of whitespace to single spaces
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
