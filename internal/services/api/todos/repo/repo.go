// Package repo provides postgres access for todos and their mutations
package repo

import (
	"context"

	"github.com/google/uuid"

	"todotrack/internal/modkit/repokit"
	perr "todotrack/internal/platform/errors"
	"todotrack/internal/platform/store"
	"todotrack/internal/services/api/todos/domain"
)

// Repo is the persistence surface for todos
type Repo interface {
	List(ctx context.Context, user uuid.UUID) ([]domain.Todo, error)
	// Get loads one todo of user; ForUpdate locks the row for the running tx
	Get(ctx context.Context, user, id uuid.UUID, forUpdate bool) (domain.Todo, error)
	Insert(ctx context.Context, t domain.Todo) error
	Update(ctx context.Context, t domain.Todo) error
	Delete(ctx context.Context, user, id uuid.UUID) error
	InsertMutation(ctx context.Context, m domain.Mutation) error
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

const cols = `id, user_id, text, done, created_at, updated_at`

func scanTodo(r store.Row) (domain.Todo, error) {
	var t domain.Todo
	err := r.Scan(&t.ID, &t.UserID, &t.Text, &t.Done, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *queries) List(ctx context.Context, user uuid.UUID) ([]domain.Todo, error) {
	const sql = `select ` + cols + ` from todos where user_id = $1 order by created_at desc, id`
	out, err := store.Many(ctx, r.q, scanTodo, sql, user)
	return out, perr.FromPostgres(err, "list todos")
}

func (r *queries) Get(ctx context.Context, user, id uuid.UUID, forUpdate bool) (domain.Todo, error) {
	sql := `select ` + cols + ` from todos where id = $1 and user_id = $2`
	if forUpdate {
		sql += ` for update`
	}
	t, err := store.One(ctx, r.q, scanTodo, sql, id, user)
	if err != nil {
		return t, notFound(err, id)
	}
	return t, nil
}

func (r *queries) Insert(ctx context.Context, t domain.Todo) error {
	const sql = `insert into todos (` + cols + `) values ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, sql, t.ID, t.UserID, t.Text, t.Done, t.CreatedAt, t.UpdatedAt)
	return perr.FromPostgres(err, "insert todo")
}

func (r *queries) Update(ctx context.Context, t domain.Todo) error {
	const sql = `update todos set text = $3, done = $4, updated_at = $5 where id = $1 and user_id = $2`
	return notFound(store.ExecOne(ctx, r.q, sql, t.ID, t.UserID, t.Text, t.Done, t.UpdatedAt), t.ID)
}

func (r *queries) Delete(ctx context.Context, user, id uuid.UUID) error {
	const sql = `delete from todos where id = $1 and user_id = $2`
	return notFound(store.ExecOne(ctx, r.q, sql, id, user), id)
}

func (r *queries) InsertMutation(ctx context.Context, m domain.Mutation) error {
	const sql = `insert into todo_mutations (id, todo_id, at, text, done) values ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, sql, m.ID, m.TodoID, m.At, m.Text, m.Done)
	return perr.FromPostgres(err, "insert todo mutation")
}

func notFound(err error, id uuid.UUID) error {
	switch {
	case err == nil:
		return nil
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return perr.WithField(perr.NotFoundf("todo %s not found", id), "id")
	default:
		return perr.FromPostgresf(err, "todo %s", id)
	}
}
