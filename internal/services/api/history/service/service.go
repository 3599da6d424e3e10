// Package service loads, renders and caches a user's history
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"todotrack/internal/core/history"
	"todotrack/internal/modkit/repokit"
	"todotrack/internal/platform/logger"
	"todotrack/internal/services/api/history/domain"
	"todotrack/internal/services/api/history/repo"
)

// Service defines the service contract for history
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	cache  *history.Cache
	now    func() time.Time
}

// New creates the history service around a process wide cache
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cache *history.Cache) *Svc {
	if db == nil {
		panic("history.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("history.Service requires a non nil Repo binder")
	}
	if cache == nil {
		panic("history.Service requires a non nil Cache")
	}
	return &Svc{db: db, binder: binder, cache: cache, now: time.Now}
}

// WithClock replaces time.Now (tests)
func (s *Svc) WithClock(now func() time.Time) *Svc { s.now = now; return s }

// Load fetches intervals and mutations concurrently, builds the history and
// replaces the user's cached snapshot. A failed fetch leaves the cache alone.
func (s *Svc) Load(ctx context.Context, req domain.Request) (history.View, error) {
	r := repokit.MustBind(s.binder, s.db)

	var (
		times []history.TimeInterval
		muts  []history.Mutation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		times, err = r.FetchTimes(gctx, req.User)
		return err
	})
	g.Go(func() error {
		var err error
		muts, err = r.FetchMutations(gctx, req.User)
		return err
	})
	if err := g.Wait(); err != nil {
		return history.View{}, err
	}

	now := s.now()
	lab := history.NewLabeler(req.Location, req.Locale)
	v := history.Render(history.Build(times, muts, lab), lab, now)
	s.cache.Put(req.User, history.Snapshot{View: v, LoadedAt: now})

	logger.C(ctx).Debug().
		Int("times", len(times)).
		Int("mutations", len(muts)).
		Int("groups", len(v.Groups)).
		Msg("history loaded")
	return v, nil
}

// Cached returns the user's last snapshot when it was rendered for the same
// zone and locale as req, loading a fresh one otherwise
func (s *Svc) Cached(ctx context.Context, req domain.Request) (domain.Cached, error) {
	if snap, ok := s.cache.Get(req.User); ok && renderedFor(snap.View, history.NewLabeler(req.Location, req.Locale)) {
		return domain.Cached{View: snap.View, LoadedAt: snap.LoadedAt, FromCache: true}, nil
	}
	v, err := s.Load(ctx, req)
	if err != nil {
		return domain.Cached{}, err
	}
	return domain.Cached{View: v, LoadedAt: v.GeneratedAt}, nil
}

// day keys and labels depend on both, so a snapshot is only reusable for the same pair
func renderedFor(v history.View, lab history.Labeler) bool {
	return v.TimeZone == lab.Location().String() && v.Locale == lab.Locale().String()
}

// Invalidate drops the user's snapshot
func (s *Svc) Invalidate(user uuid.UUID) { s.cache.Drop(user) }
