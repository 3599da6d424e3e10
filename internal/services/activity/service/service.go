// Package service writes activity events to ClickHouse
package service

import (
	"context"
	"time"

	"todotrack/internal/platform/logger"
	"todotrack/internal/platform/store"
	"todotrack/internal/services/activity/domain"
)

// Noop drops every event; used when ClickHouse is disabled
type Noop struct{}

// Record does nothing
func (Noop) Record(context.Context, ...domain.Event) {}

// Sink inserts events into activity_events
type Sink struct {
	ch      store.Clickhouse
	timeout time.Duration
}

// New returns a ClickHouse sink, or Noop when ch is nil
func New(ch store.Clickhouse, timeout time.Duration) domain.Sink {
	if ch == nil {
		return Noop{}
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Sink{ch: ch, timeout: timeout}
}

// Record inserts events in one batch. Failures are logged and swallowed.
func (s *Sink) Record(ctx context.Context, events ...domain.Event) {
	if len(events) == 0 {
		return
	}
	rows := make([][]any, 0, len(events))
	for _, e := range events {
		rows = append(rows, e.Row())
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	if err := s.ch.Insert(ctx, domain.Table, rows); err != nil {
		logger.C(ctx).Warn().Err(err).Int("events", len(events)).Msg("activity insert failed")
	}
}
