// Package service creates users and resolves bearer tokens to them
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"todotrack/internal/modkit/repokit"
	perr "todotrack/internal/platform/errors"
	"todotrack/internal/platform/logger"
	"todotrack/internal/services/ident/domain"
)

// Service is the ident workflow surface
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[domain.Repo]
	now    func() time.Time
}

// New builds the service; both arguments are required
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Service {
	if db == nil {
		panic("ident.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ident.Service requires a non nil Repo binder")
	}
	return &Service{db: db, binder: binder, now: time.Now}
}

// WithClock replaces the clock (tests)
func (s *Service) WithClock(now func() time.Time) *Service { s.now = now; return s }

// CreateUser stores a new user and returns the bearer token. The token is not recoverable later.
func (s *Service) CreateUser(ctx context.Context, name string) (domain.User, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, "", perr.WithField(perr.Validationf("name must not be blank"), "name")
	}
	tok, hash, err := domain.NewToken()
	if err != nil {
		return domain.User{}, "", perr.Wrap(err, perr.ErrorCodeUnknown, "mint token")
	}
	u := domain.User{ID: uuid.New(), Name: name, CreatedAt: s.now().UTC()}
	if err := repokit.MustBind(s.binder, s.db).Insert(ctx, u, hash); err != nil {
		return domain.User{}, "", err
	}
	logger.C(ctx).Info().Str("user_id", u.ID.String()).Str("name", u.Name).Msg("user created")
	return u, tok, nil
}

// Authenticate resolves a bearer token to a user id
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	u, err := repokit.MustBind(s.binder, s.db).ByTokenHash(ctx, domain.HashToken(token))
	if errors.Is(err, perr.ErrNotFound) {
		return "", perr.Unauthorizedf("invalid token")
	}
	if err != nil {
		return "", err
	}
	return u.ID.String(), nil
}

// User loads a user by id
func (s *Service) User(ctx context.Context, id uuid.UUID) (domain.User, error) {
	u, err := repokit.MustBind(s.binder, s.db).Get(ctx, id)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.User{}, perr.NotFoundf("user %s not found", id)
	}
	return u, err
}
