// Package service contains todo workflows: every change is stored together
// with the mutation that describes it
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todotrack/internal/core/normalize"
	"todotrack/internal/modkit/repokit"
	perr "todotrack/internal/platform/errors"
	"todotrack/internal/platform/logger"
	actdom "todotrack/internal/services/activity/domain"
	"todotrack/internal/services/api/todos/domain"
	"todotrack/internal/services/api/todos/repo"
)

// Invalidator drops a user's cached history after a change
type Invalidator interface {
	Invalidate(user uuid.UUID)
}

// Service defines the service contract for todos
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

// WithSink mirrors mutations into the activity sink
func WithSink(s actdom.Sink) Option { return func(v *Svc) { v.sink = s } }

// WithInvalidator drops cached history on change
func WithInvalidator(i Invalidator) Option { return func(v *Svc) { v.cache = i } }

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option { return func(v *Svc) { v.now = now } }

// New creates the todos service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("todos.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("todos.Service requires a non nil Repo binder")
	}
	s := &Svc{db: db, binder: binder, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// List returns the user's todos, newest first
func (s *Svc) List(ctx context.Context, user uuid.UUID) ([]domain.Todo, error) {
	return repokit.MustBind(s.binder, s.db).List(ctx, user)
}

// Get returns one todo of user
func (s *Svc) Get(ctx context.Context, user, id uuid.UUID) (domain.Todo, error) {
	return repokit.MustBind(s.binder, s.db).Get(ctx, user, id, false)
}

// Create stores a todo and its initial text mutation
func (s *Svc) Create(ctx context.Context, user uuid.UUID, in domain.CreateInput) (domain.Todo, error) {
	text, err := cleanText(in.Text)
	if err != nil {
		return domain.Todo{}, err
	}
	now := s.now().UTC()
	t := domain.Todo{ID: newID(), UserID: user, Text: text, CreatedAt: now, UpdatedAt: now}
	m := domain.Mutation{ID: newID(), TodoID: t.ID, At: now, Text: &text}

	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		if err := r.Insert(ctx, t); err != nil {
			return err
		}
		return r.InsertMutation(ctx, m)
	})
	if err != nil {
		return domain.Todo{}, err
	}
	s.after(ctx, user, m)
	logger.C(ctx).Debug().Str("todo_id", t.ID.String()).Msg("todo created")
	return t, nil
}

// Update applies the changed fields and records them as one mutation.
// An edit that changes nothing records nothing.
func (s *Svc) Update(ctx context.Context, user, id uuid.UUID, in domain.UpdateInput) (domain.Todo, error) {
	var text *string
	if in.Text != nil {
		t, err := cleanText(*in.Text)
		if err != nil {
			return domain.Todo{}, err
		}
		text = &t
	}
	return s.change(ctx, user, id, func(cur domain.Todo) (*string, *bool) {
		var dt *string
		var dd *bool
		if text != nil && *text != cur.Text {
			dt = text
		}
		if in.Done != nil && *in.Done != cur.Done {
			dd = in.Done
		}
		return dt, dd
	})
}

// Toggle flips done and records a done-only mutation
func (s *Svc) Toggle(ctx context.Context, user, id uuid.UUID) (domain.Todo, error) {
	return s.change(ctx, user, id, func(cur domain.Todo) (*string, *bool) {
		flipped := !cur.Done
		return nil, &flipped
	})
}

// Delete removes the todo; its times and mutations go with it
func (s *Svc) Delete(ctx context.Context, user, id uuid.UUID) error {
	if err := repokit.MustBind(s.binder, s.db).Delete(ctx, user, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(user)
	}
	return nil
}

// change locks the todo, asks diff which fields move, then writes todo and mutation in one tx
func (s *Svc) change(ctx context.Context, user, id uuid.UUID, diff func(domain.Todo) (*string, *bool)) (domain.Todo, error) {
	var (
		out     domain.Todo
		m       domain.Mutation
		changed bool
	)
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := repokit.MustBind(s.binder, q)
		cur, err := r.Get(ctx, user, id, true)
		if err != nil {
			return err
		}
		out = cur
		text, done := diff(cur)
		if text == nil && done == nil {
			return nil
		}

		now := s.now().UTC()
		if text != nil {
			out.Text = *text
		}
		if done != nil {
			out.Done = *done
		}
		out.UpdatedAt = now
		if err := r.Update(ctx, out); err != nil {
			return err
		}
		m = domain.Mutation{ID: newID(), TodoID: id, At: now, Text: text, Done: done}
		changed = true
		return r.InsertMutation(ctx, m)
	})
	if err != nil {
		return domain.Todo{}, err
	}
	if changed {
		s.after(ctx, user, m)
	}
	return out, nil
}

// newID is a v7 UUID: ids minted by this process sort in creation order,
// which orders mutations sharing an instant
func newID() uuid.UUID { return uuid.Must(uuid.NewV7()) }

func (s *Svc) after(ctx context.Context, user uuid.UUID, m domain.Mutation) {
	if s.cache != nil {
		s.cache.Invalidate(user)
	}
	if s.sink != nil {
		s.sink.Record(ctx, actdom.Event{
			ID:          m.ID,
			UserID:      user,
			TodoID:      m.TodoID,
			Kind:        actdom.KindMutation,
			At:          m.At,
			TextChanged: m.Text != nil,
			Done:        m.Done,
		})
	}
}

func cleanText(s string) (string, error) {
	t := normalize.Text(s)
	if t == "" {
		return "", perr.WithField(perr.Validationf("text must not be blank"), "text")
	}
	return t, nil
}
