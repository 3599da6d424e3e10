package httpkit

import (
	"context"

	"todotrack/internal/platform/net/middleware"
)

// Authenticator resolves a bearer token to a user id
type Authenticator = middleware.Authenticator

// TokenFunc adapts a plain function to Authenticator
type TokenFunc func(ctx context.Context, token string) (string, error)

// Authenticate calls f
func (f TokenFunc) Authenticate(ctx context.Context, token string) (string, error) {
	return f(ctx, token)
}

// Protected mounts fn's routes in a group that requires a valid bearer token
func Protected(r Router, a Authenticator, fn func(Router)) {
	r.Group(func(g Router) {
		g.Use(middleware.Auth(a))
		fn(g)
	})
}
