// Package repo provides postgres access for time intervals
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todotrack/internal/modkit/repokit"
	perr "todotrack/internal/platform/errors"
	"todotrack/internal/platform/store"
	"todotrack/internal/services/api/times/domain"
)

// Repo is the persistence surface for intervals
type Repo interface {
	// Owned fails with NotFound unless todo belongs to user
	Owned(ctx context.Context, user, todo uuid.UUID) error
	Open(ctx context.Context, iv domain.Interval) error
	CloseOpen(ctx context.Context, todo uuid.UUID, end time.Time) (domain.Interval, error)
	List(ctx context.Context, user uuid.UUID) ([]domain.Interval, error)
}

type (
	// PG binds Repo to a Queryer
	PG struct{}

	queries struct{ q repokit.Queryer }
)

var _ Repo = (*queries)(nil)

// NewPG returns a binder for Repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Owned(ctx context.Context, user, todo uuid.UUID) error {
	const sql = `select exists (select 1 from todos where id = $1 and user_id = $2)`
	ok, err := store.Scalar[bool](ctx, r.q, sql, todo, user)
	if err != nil {
		return perr.FromPostgres(err, "check todo owner")
	}
	if !ok {
		return perr.WithField(perr.NotFoundf("todo %s not found", todo), "id")
	}
	return nil
}

func (r *queries) Open(ctx context.Context, iv domain.Interval) error {
	const sql = `insert into times (id, todo_id, at, "end") values ($1, $2, $3, null)`
	_, err := r.q.Exec(ctx, sql, iv.ID, iv.TodoID, iv.Start)
	if perr.IsDuplicateKey(err) {
		return perr.Conflictf("a timer is already running for todo %s", iv.TodoID)
	}
	return perr.FromPostgres(err, "open interval")
}

func scanInterval(r store.Row) (domain.Interval, error) {
	var iv domain.Interval
	err := r.Scan(&iv.ID, &iv.TodoID, &iv.Start, &iv.End)
	return iv, err
}

func (r *queries) CloseOpen(ctx context.Context, todo uuid.UUID, end time.Time) (domain.Interval, error) {
	const sql = `
update times set "end" = greatest($2, at)
where todo_id = $1 and "end" is null
returning id, todo_id, at, "end"`
	iv, err := store.One(ctx, r.q, scanInterval, sql, todo, end)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return iv, perr.NotFoundf("no running timer for todo %s", todo)
	}
	return iv, perr.FromPostgres(err, "close interval")
}

func (r *queries) List(ctx context.Context, user uuid.UUID) ([]domain.Interval, error) {
	const sql = `
select t.id, t.todo_id, t.at, t."end", d.text, d.done
from times t
join todos d on d.id = t.todo_id
where d.user_id = $1
order by t.at desc`
	out, err := store.Many(ctx, r.q, func(row store.Row) (domain.Interval, error) {
		var iv domain.Interval
		ref := domain.TodoRef{}
		if err := row.Scan(&iv.ID, &iv.TodoID, &iv.Start, &iv.End, &ref.Text, &ref.Done); err != nil {
			return iv, err
		}
		ref.ID = iv.TodoID
		iv.Todo = &ref
		return iv, nil
	}, sql, user)
	return out, perr.FromPostgres(err, "list intervals")
}
