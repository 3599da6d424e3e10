// Package repo fetches the two history collections from postgres
package repo

import (
	"context"

	"github.com/google/uuid"

	"todotrack/internal/core/history"
	"todotrack/internal/modkit/repokit"
	perr "todotrack/internal/platform/errors"
	"todotrack/internal/platform/store"
)

// Repo returns the user's intervals and mutations with their todo joined, in no particular order
type Repo interface {
	FetchTimes(ctx context.Context, user uuid.UUID) ([]history.TimeInterval, error)
	FetchMutations(ctx context.Context, user uuid.UUID) ([]history.Mutation, error)
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

func (r *queries) FetchTimes(ctx context.Context, user uuid.UUID) ([]history.TimeInterval, error) {
	const sql = `
select t.id, t.todo_id, t.at, t."end", d.text, d.done
from times t
join todos d on d.id = t.todo_id
where d.user_id = $1`
	out, err := store.Many(ctx, r.q, func(row store.Row) (history.TimeInterval, error) {
		var (
			iv   history.TimeInterval
			todo history.Todo
		)
		if err := row.Scan(&iv.ID, &iv.TodoID, &iv.Start, &iv.End, &todo.Text, &todo.Done); err != nil {
			return iv, err
		}
		todo.ID = iv.TodoID
		iv.Todo = &todo
		return iv, nil
	}, sql, user)
	return out, perr.FromPostgres(err, "fetch times")
}

func (r *queries) FetchMutations(ctx context.Context, user uuid.UUID) ([]history.Mutation, error) {
	const sql = `
select m.id, m.todo_id, m.at, m.text, m.done, d.text, d.done
from todo_mutations m
join todos d on d.id = m.todo_id
where d.user_id = $1`
	out, err := store.Many(ctx, r.q, func(row store.Row) (history.Mutation, error) {
		var (
			m    history.Mutation
			todo history.Todo
		)
		if err := row.Scan(&m.ID, &m.TodoID, &m.At, &m.Text, &m.Done, &todo.Text, &todo.Done); err != nil {
			return m, err
		}
		todo.ID = m.TodoID
		m.Todo = &todo
		return m, nil
	}, sql, user)
	return out, perr.FromPostgres(err, "fetch mutations")
}
