// Package http is the HTTP seam: a Router facade over chi, a server wrapper,
// and return-style handlers that always answer with the standard envelope.
package http

import "net/http"

// Handler is the handler shape mounted on a Router
type Handler = func(http.ResponseWriter, *http.Request)

// Router is everything modules need to mount routes
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
