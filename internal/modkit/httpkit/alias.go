// Package httpkit is the HTTP surface modules import instead of the platform packages
package httpkit

import (
	"net/http"

	phttp "todotrack/internal/platform/net/http"
)

type (
	// Envelope is the response body shape
	Envelope = phttp.Envelope
	// Response is a return-style handler result
	Response = phttp.Response
	// Handler is the mounted handler shape
	Handler = phttp.Handler
	// Router is the routing seam
	Router = phttp.Router
)

// OK is a 200
func OK(data any) Response { return phttp.OK(data) }

// Created is a 201
func Created(data any) Response { return phttp.Created(data) }

// NoContent is a 204
func NoContent() Response { return phttp.NoContent() }

// Error maps err to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Handle adapts a return-style handler
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Call adapts a (value, error) handler. A Response value is passed through untouched.
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.NoBodyHandler(fn) }
