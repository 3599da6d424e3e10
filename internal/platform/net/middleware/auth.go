package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	perr "todotrack/internal/platform/errors"
	lnet "todotrack/internal/platform/net"
)

// Authenticator resolves a bearer token to a user id
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (userID string, err error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>"
func BearerToken(r *http.Request) (string, bool) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}

// Auth rejects requests without a valid bearer token and stores the user id on the context
func Auth(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, ok := BearerToken(r)
			if !ok {
				writeErr(w, r, perr.Unauthorizedf("missing bearer token"))
				return
			}
			uid, err := a.Authenticate(r.Context(), tok)
			if err != nil {
				writeErr(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(lnet.WithUser(r.Context(), uid)))
		})
	}
}

func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status, env := lnet.Error(err, lnet.RequestID(r.Context()))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="todotrack"`)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
