package middleware_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perr "todotrack/internal/platform/errors"
	lnet "todotrack/internal/platform/net"
	"todotrack/internal/platform/net/middleware"
)

type tokens map[string]string

func (t tokens) Authenticate(_ context.Context, tok string) (string, error) {
	if uid, ok := t[tok]; ok {
		return uid, nil
	}
	return "", perr.Unauthorizedf("unknown token")
}

func envelope(t *testing.T, rr *httptest.ResponseRecorder) lnet.Wire {
	t.Helper()
	var w lnet.Wire
	if err := json.Unmarshal(rr.Body.Bytes(), &w); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return w
}

func TestAuth(t *testing.T) {
	var seen string
	h := middleware.Auth(tokens{"s3cret": "user-1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = lnet.UserID(r.Context())
	}))

	cases := []struct {
		name   string
		header string
		status int
		user   string
	}{
		{"valid", "Bearer s3cret", http.StatusOK, "user-1"},
		{"case insensitive scheme", "bearer s3cret", http.StatusOK, "user-1"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"basic", "Basic s3cret", http.StatusUnauthorized, ""},
		{"empty token", "Bearer   ", http.StatusUnauthorized, ""},
		{"unknown", "Bearer nope", http.StatusUnauthorized, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/todos", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.status || seen != tc.user {
				t.Fatalf("status=%d user=%q", rr.Code, seen)
			}
			if tc.status == http.StatusUnauthorized {
				if rr.Header().Get("WWW-Authenticate") == "" {
					t.Fatal("missing WWW-Authenticate")
				}
				if env := envelope(t, rr); env.Code != perr.ErrorCodeUnauthorized {
					t.Fatalf("env = %+v", env)
				}
			}
		})
	}
}

func TestRecoverJSON(t *testing.T) {
	h := middleware.RequestID()(middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	env := envelope(t, rr)
	if env.Code != perr.ErrorCodePanic || env.RequestID != "rid-1" {
		t.Fatalf("env = %+v", env)
	}
	if rr.Header().Get("X-Request-Id") != "rid-1" {
		t.Fatal("request id header not mirrored")
	}
}

func TestAccessLogPassesThrough(t *testing.T) {
	for _, slow := range []time.Duration{0, time.Nanosecond} {
		h := middleware.AccessLog(middleware.AccessLogOptions{Slow: slow})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, "hi")
			_, _ = io.WriteString(w, "there")
		}))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/x", nil))
		if rr.Code != http.StatusCreated || rr.Body.String() != "hithere" {
			t.Fatalf("slow=%v: %d %q", slow, rr.Code, rr.Body.String())
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"http://app.local"}})(http.NotFoundHandler())
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/history", nil)
	req.Header.Set("Origin", "http://app.local")
	req.Header.Set("Access-Control-Request-Method", "GET")
	req.Header.Set("Access-Control-Request-Headers", "X-Timezone")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://app.local" {
		t.Fatalf("allow-origin = %q", got)
	}
}

func TestRequestIDMinted(t *testing.T) {
	var got string
	h := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = lnet.RequestID(r.Context())
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if got == "" || rr.Header().Get("X-Request-Id") != got {
		t.Fatalf("minted id %q, header %q", got, rr.Header().Get("X-Request-Id"))
	}
}
