// Package service contains start and stop workflows for time intervals
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todotrack/internal/core/history"
	"todotrack/internal/modkit/repokit"
	"todotrack/internal/platform/logger"
	actdom "todotrack/internal/services/activity/domain"
	"todotrack/internal/services/api/times/domain"
	"todotrack/internal/services/api/times/repo"
)

// Invalidator drops a user's cached history after a change
type Invalidator interface {
	Invalidate(user uuid.UUID)
}

// Service defines the service contract for times
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	sink   actdom.Sink
	cache  Invalidator
	now    func() time.Time
}

// Option tunes Svc
type Option func(*Svc)

// WithSink mirrors closed intervals into the activity sink
func WithSink(s actdom.Sink) Option { return func(v *Svc) { v.sink = s } }

// WithInvalidator drops cached history on change
func WithInvalidator(i Invalidator) Option { return func(v *Svc) { v.cache = i } }

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option { return func(v *Svc) { v.now = now } }

// New creates the times service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("times.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("times.Service requires a non nil Repo binder")
	}
	s := &Svc{db: db, binder: binder, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start opens an interval; a second running interval for the same todo is a conflict
func (s *Svc) Start(ctx context.Context, user, todo uuid.UUID) (domain.Interval, error) {
	iv := domain.Interval{ID: uuid.New(), TodoID: todo, Start: s.now().UTC()}
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		if err := r.Owned(ctx, user, todo); err != nil {
			return err
		}
		return r.Open(ctx, iv)
	})
	if err != nil {
		return domain.Interval{}, err
	}
	s.invalidate(user)
	logger.C(ctx).Debug().Str("todo_id", todo.String()).Msg("timer started")
	return iv, nil
}

// Stop closes the running interval of todo
func (s *Svc) Stop(ctx context.Context, user, todo uuid.UUID) (domain.Interval, error) {
	var iv domain.Interval
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		if err := r.Owned(ctx, user, todo); err != nil {
			return err
		}
		var err error
		iv, err = r.CloseOpen(ctx, todo, s.now().UTC())
		return err
	})
	if err != nil {
		return domain.Interval{}, err
	}
	s.invalidate(user)

	if s.sink != nil {
		secs, _ := history.Elapsed(history.TimeInterval{Start: iv.Start, End: iv.End}, *iv.End)
		s.sink.Record(ctx, actdom.Event{
			ID:        iv.ID,
			UserID:    user,
			TodoID:    todo,
			Kind:      actdom.KindInterval,
			At:        iv.Start,
			DurationS: uint32(secs),
		})
	}
	return iv, nil
}

// List returns the user's intervals with their todo, newest first
func (s *Svc) List(ctx context.Context, user uuid.UUID) ([]domain.Interval, error) {
	return repokit.MustBind(s.binder, s.db).List(ctx, user)
}

func (s *Svc) invalidate(user uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(user)
	}
}
