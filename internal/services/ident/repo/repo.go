// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"

	"github.com/google/uuid"

	"todotrack/internal/modkit/repokit"
	perr "todotrack/internal/platform/errors"
	"todotrack/internal/platform/store"
	"todotrack/internal/services/ident/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

func scanUser(r store.Row) (domain.User, error) {
	var u domain.User
	err := r.Scan(&u.ID, &u.Name, &u.CreatedAt)
	return u, err
}

func (r *queries) Insert(ctx context.Context, u domain.User, hash domain.TokenHash) error {
	const sql = `insert into users (id, name, token_hash, created_at) values ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, sql, u.ID, u.Name, hash.Bytes(), u.CreatedAt); err != nil {
		return perr.FromPostgresf(err, "insert user %s", u.Name)
	}
	return nil
}

func (r *queries) ByTokenHash(ctx context.Context, hash domain.TokenHash) (domain.User, error) {
	const sql = `select id, name, created_at from users where token_hash = $1`
	return store.One(ctx, r.q, scanUser, sql, hash.Bytes())
}

func (r *queries) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	const sql = `select id, name, created_at from users where id = $1`
	return store.One(ctx, r.q, scanUser, sql, id)
}
