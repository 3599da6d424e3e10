// Package net holds transport-neutral request context and reply envelopes
package net

import (
	"context"

	"todotrack/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{}

var keyUserID ctxKey

// WithRequest stores the request id where chi's GetReqID and the logger can see it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID)
}

// WithUser stores the authenticated user id; request loggers pick it up too
func WithUser(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, keyUserID, userID)
	return logger.WithUser(ctx, userID)
}

// RequestID returns the request id or ""
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// UserID returns the authenticated user id or ""
func UserID(ctx context.Context) string {
	s, _ := ctx.Value(keyUserID).(string)
	return s
}
