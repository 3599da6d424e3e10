package service

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"

	"todotrack/internal/core/history"
	"todotrack/internal/modkit/repokit"
	perr "todotrack/internal/platform/errors"
	"todotrack/internal/platform/store"
	"todotrack/internal/platform/testkit"
	actdom "todotrack/internal/services/activity/domain"
	"todotrack/internal/services/api/todos/domain"
	"todotrack/internal/services/api/todos/repo"
)

type memRepo struct {
	todos map[uuid.UUID]domain.Todo
	muts  []domain.Mutation
}

func (m *memRepo) List(_ context.Context, user uuid.UUID) ([]domain.Todo, error) {
	out := []domain.Todo{}
	for _, t := range m.todos {
		if t.UserID == user {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, user, id uuid.UUID, _ bool) (domain.Todo, error) {
	t, ok := m.todos[id]
	if !ok || t.UserID != user {
		return domain.Todo{}, perr.NotFoundf("todo %s not found", id)
	}
	return t, nil
}

func (m *memRepo) Insert(_ context.Context, t domain.Todo) error { m.todos[t.ID] = t; return nil }
func (m *memRepo) Update(_ context.Context, t domain.Todo) error { m.todos[t.ID] = t; return nil }

func (m *memRepo) Delete(ctx context.Context, user, id uuid.UUID) error {
	if _, err := m.Get(ctx, user, id, false); err != nil {
		return err
	}
	delete(m.todos, id)
	return nil
}

func (m *memRepo) InsertMutation(_ context.Context, mu domain.Mutation) error {
	m.muts = append(m.muts, mu)
	return nil
}

type nopTx struct{}

func (nopTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (nopTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (nopTx) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (t nopTx) Tx(_ context.Context, fn func(repokit.Queryer) error) error   { return fn(t) }

type recSink struct{ events []actdom.Event }

func (r *recSink) Record(_ context.Context, ev ...actdom.Event) { r.events = append(r.events, ev...) }

type recCache struct{ users []uuid.UUID }

func (r *recCache) Invalidate(u uuid.UUID) { r.users = append(r.users, u) }

type fixture struct {
	svc   *Svc
	repo  *memRepo
	sink  *recSink
	cache *recCache
	user  uuid.UUID
}

func newFixture() fixture {
	f := fixture{
		repo:  &memRepo{todos: map[uuid.UUID]domain.Todo{}},
		sink:  &recSink{},
		cache: &recCache{},
		user:  uuid.New(),
	}
	b := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f.repo })
	f.svc = New(nopTx{}, b,
		WithSink(f.sink),
		WithInvalidator(f.cache),
		WithClock(testkit.Clock(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))),
	)
	return f
}

func TestCreate_RecordsInitialTextMutation(t *testing.T) {
	t.Parallel()

	f := newFixture()
	todo, err := f.svc.Create(context.Background(), f.user, domain.CreateInput{Text: "  buy   milk "})
	if err != nil {
		t.Fatal(err)
	}
	if todo.Text != "buy milk" || todo.Done || todo.UserID != f.user {
		t.Fatalf("todo = %+v", todo)
	}
	if len(f.repo.muts) != 1 || *f.repo.muts[0].Text != "buy milk" || f.repo.muts[0].Done != nil {
		t.Fatalf("mutations = %+v", f.repo.muts)
	}
	if len(f.sink.events) != 1 || !f.sink.events[0].TextChanged || f.sink.events[0].UserID != f.user {
		t.Fatalf("events = %+v", f.sink.events)
	}
	if !slices.Equal(f.cache.users, []uuid.UUID{f.user}) {
		t.Fatalf("cache not invalidated")
	}
}

func TestCreate_BlankText(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.svc.Create(context.Background(), f.user, domain.CreateInput{Text: "\u200b "})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v", err)
	}
	if len(f.repo.todos) != 0 {
		t.Fatalf("blank todo stored")
	}
}

func TestUpdate_RecordsOnlyChangedFields(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	todo, _ := f.svc.Create(ctx, f.user, domain.CreateInput{Text: "buy milk"})

	str := func(s string) *string { return &s }
	yes := true

	cases := []struct {
		name     string
		in       domain.UpdateInput
		wantMuts int
		text     *string
		done     *bool
	}{
		{"same text is a no-op", domain.UpdateInput{Text: str(" buy milk ")}, 1, nil, nil},
		{"text only", domain.UpdateInput{Text: str("buy bread")}, 2, str("buy bread"), nil},
		{"text unchanged done changed", domain.UpdateInput{Text: str("buy bread"), Done: &yes}, 3, nil, &yes},
		{"nothing", domain.UpdateInput{}, 3, nil, nil},
	}
	for _, tc := range cases {
		if _, err := f.svc.Update(ctx, f.user, todo.ID, tc.in); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(f.repo.muts) != tc.wantMuts {
			t.Fatalf("%s: mutations = %d, want %d", tc.name, len(f.repo.muts), tc.wantMuts)
		}
		if tc.text == nil && tc.done == nil {
			continue
		}
		last := f.repo.muts[len(f.repo.muts)-1]
		if (tc.text == nil) != (last.Text == nil) || (tc.done == nil) != (last.Done == nil) {
			t.Fatalf("%s: last mutation = %+v", tc.name, last)
		}
	}

	got := f.repo.todos[todo.ID]
	if got.Text != "buy bread" || !got.Done {
		t.Fatalf("todo = %+v", got)
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	todo, _ := f.svc.Create(ctx, f.user, domain.CreateInput{Text: "walk"})

	got, err := f.svc.Toggle(ctx, f.user, todo.ID)
	if err != nil || !got.Done {
		t.Fatalf("toggle = %+v, %v", got, err)
	}
	got, _ = f.svc.Toggle(ctx, f.user, todo.ID)
	if got.Done {
		t.Fatalf("second toggle should undo")
	}
	last := f.repo.muts[len(f.repo.muts)-1]
	if last.Text != nil || last.Done == nil || *last.Done {
		t.Fatalf("last mutation = %+v", last)
	}
	if len(f.sink.events) != 3 {
		t.Fatalf("events = %d", len(f.sink.events))
	}
}

func TestForeignTodoIsNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	todo, _ := f.svc.Create(ctx, f.user, domain.CreateInput{Text: "mine"})
	other := uuid.New()

	if _, err := f.svc.Get(ctx, other, todo.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("get err = %v", err)
	}
	if _, err := f.svc.Toggle(ctx, other, todo.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("toggle err = %v", err)
	}
	if err := f.svc.Delete(ctx, other, todo.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("delete err = %v", err)
	}
	if err := f.svc.Delete(ctx, f.user, todo.ID); err != nil {
		t.Fatalf("delete own: %v", err)
	}
	list, _ := f.svc.List(ctx, f.user)
	if len(list) != 0 {
		t.Fatalf("list = %+v", list)
	}
}

func TestUpdate_SameInstantEditsKeepCreationOrder(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }
	ctx := context.Background()
	for range 25 {
		f := newFixture()
		todo, _ := f.svc.Create(ctx, f.user, domain.CreateInput{Text: "draft"})
		for _, text := range []string{"second", "third"} {
			if _, err := f.svc.Update(ctx, f.user, todo.ID, domain.UpdateInput{Text: str(text)}); err != nil {
				t.Fatal(err)
			}
		}

		muts := make([]history.Mutation, 0, len(f.repo.muts))
		for _, m := range f.repo.muts {
			if m.ID.Version() != 7 {
				t.Fatalf("id %s is version %d", m.ID, m.ID.Version())
			}
			muts = append(muts, history.Mutation{ID: m.ID, TodoID: m.TodoID, At: m.At, Text: m.Text})
		}
		ix := history.BuildIndex(muts)
		if got := ix.PreviousText(muts[2]); got != "second" {
			t.Fatalf("previous of third edit = %q", got)
		}
		if got := ix.PreviousText(muts[1]); got != "draft" {
			t.Fatalf("previous of second edit = %q", got)
		}
	}
}
