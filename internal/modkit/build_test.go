package modkit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"todotrack/internal/modkit/httpkit"
	phttp "todotrack/internal/platform/net/http"
	"todotrack/internal/platform/testkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || b.Auth != nil {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	if len(b.Mw) != 0 {
		t.Fatalf("default Mw length = %d, want 0", len(b.Mw))
	}
	var r httpkit.Router
	if r2 := b.Subrouter(r); r2 != r {
		t.Fatalf("default Subrouter should be identity")
	}
	b.Register(r)
}

func TestBuild_MiddlewareSliceIsCopied(t *testing.T) {
	t.Parallel()

	mw := []func(http.Handler) http.Handler{func(h http.Handler) http.Handler { return h }}
	b := Build(WithName("todos"), WithPrefix("/todos"), WithMiddlewares(mw...), WithPorts("ports"))
	mw[0] = nil
	if b.Mw[0] == nil {
		t.Fatalf("Build must copy middleware")
	}
	if b.Name != "todos" || b.Prefix != "/todos" || b.Ports != "ports" {
		t.Fatalf("options not applied: %+v", b)
	}
}

func TestBuilt_MountPrefixAndAuth(t *testing.T) {
	t.Parallel()

	auth := httpkit.TokenFunc(func(_ context.Context, tok string) (string, error) {
		if tok == "good" {
			return "00000000-0000-0000-0000-000000000001", nil
		}
		return "", context.Canceled
	})
	b := Build(WithPrefix("/things"), WithAuth(auth))

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"good token", "Bearer good", http.StatusTeapot},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/things/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestBuilt_MountFallsBackToRegister(t *testing.T) {
	t.Parallel()

	called := false
	b := Build(WithRegister(func(httpkit.Router) { called = true }))
	b.Mount(phttp.AdaptChi(chi.NewRouter()), nil)
	if !called {
		t.Fatalf("Register not used when register arg is nil")
	}
}

func TestWithPrefix_Normalises(t *testing.T) {
	t.Parallel()

	if b := Build(WithPrefix(" stats/ ")); b.Prefix != "/stats" {
		t.Fatalf("prefix = %q", b.Prefix)
	}
	testkit.MustPanic(t, func() { Build(WithPrefix("/")) })
}
