package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"todotrack/internal/modkit/httpkit"
	perr "todotrack/internal/platform/errors"
	phttp "todotrack/internal/platform/net/http"
	"todotrack/internal/services/api/todos/domain"
)

type fakeSvc struct {
	user    uuid.UUID
	created domain.CreateInput
	updated domain.UpdateInput
}

func (f *fakeSvc) List(_ context.Context, user uuid.UUID) ([]domain.Todo, error) {
	f.user = user
	return []domain.Todo{{ID: uuid.New(), Text: "a"}}, nil
}

func (f *fakeSvc) Get(_ context.Context, _, id uuid.UUID) (domain.Todo, error) {
	return domain.Todo{}, perr.NotFoundf("todo %s not found", id)
}

func (f *fakeSvc) Create(_ context.Context, _ uuid.UUID, in domain.CreateInput) (domain.Todo, error) {
	f.created = in
	return domain.Todo{ID: uuid.New(), Text: in.Text}, nil
}

func (f *fakeSvc) Update(_ context.Context, _, id uuid.UUID, in domain.UpdateInput) (domain.Todo, error) {
	f.updated = in
	return domain.Todo{ID: id}, nil
}

func (f *fakeSvc) Toggle(_ context.Context, _, id uuid.UUID) (domain.Todo, error) {
	return domain.Todo{ID: id, Done: true}, nil
}

func (f *fakeSvc) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func setup(t *testing.T) (*chi.Mux, *fakeSvc, uuid.UUID) {
	t.Helper()
	user := uuid.New()
	auth := httpkit.TokenFunc(func(_ context.Context, tok string) (string, error) {
		if tok != "t" {
			return "", perr.Unauthorizedf("invalid token")
		}
		return user.String(), nil
	})
	svc := &fakeSvc{}
	mux := chi.NewRouter()
	phttp.AdaptChi(mux).Route("/todos", func(r httpkit.Router) {
		httpkit.Protected(r, auth, func(p httpkit.Router) { Register(p, svc) })
	})
	return mux, svc, user
}

func do(mux stdhttp.Handler, method, path, body string) (*httptest.ResponseRecorder, httpkit.Envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	var env httpkit.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestHandlers(t *testing.T) {
	t.Parallel()

	mux, svc, user := setup(t)
	id := uuid.New()

	cases := []struct {
		name, method, path, body string
		want                     int
	}{
		{"list", stdhttp.MethodGet, "/todos/", "", stdhttp.StatusOK},
		{"create", stdhttp.MethodPost, "/todos/", `{"text":"buy milk"}`, stdhttp.StatusCreated},
		{"create blank", stdhttp.MethodPost, "/todos/", `{"text":"  "}`, stdhttp.StatusBadRequest},
		{"create unknown field", stdhttp.MethodPost, "/todos/", `{"txt":"x"}`, stdhttp.StatusBadRequest},
		{"get missing", stdhttp.MethodGet, "/todos/" + id.String(), "", stdhttp.StatusNotFound},
		{"bad id", stdhttp.MethodGet, "/todos/42", "", stdhttp.StatusUnprocessableEntity},
		{"patch", stdhttp.MethodPatch, "/todos/" + id.String(), `{"done":true}`, stdhttp.StatusOK},
		{"toggle", stdhttp.MethodPost, "/todos/" + id.String() + "/toggle", "", stdhttp.StatusOK},
		{"delete", stdhttp.MethodDelete, "/todos/" + id.String(), "", stdhttp.StatusNoContent},
	}
	for _, tc := range cases {
		rec, _ := do(mux, tc.method, tc.path, tc.body)
		if rec.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d (%s)", tc.name, rec.Code, tc.want, rec.Body.String())
		}
	}

	if svc.user != user {
		t.Fatalf("list got user %s, want %s", svc.user, user)
	}
	if svc.created.Text != "buy milk" {
		t.Fatalf("created = %+v", svc.created)
	}
	if svc.updated.Done == nil || !*svc.updated.Done || svc.updated.Text != nil {
		t.Fatalf("updated = %+v", svc.updated)
	}
}

func TestHandlers_RequireToken(t *testing.T) {
	t.Parallel()

	mux, _, _ := setup(t)
	req := httptest.NewRequest(stdhttp.MethodGet, "/todos/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}
