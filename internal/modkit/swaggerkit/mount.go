// Package swaggerkit mounts the Swagger UI and a patched JSON spec
package swaggerkit

import (
	"net/http"

	"todotrack/internal/modkit/httpkit"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocReader returns the raw swagger document
type DocReader func() string

// Mount serves the UI at /api/docs and the spec at /api/docs/doc.json when enabled
func Mount(r httpkit.Router, enabled bool, read DocReader) {
	if !enabled || read == nil {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(read))
	r.Handle("/api/docs/*", httpSwagger.Handler(httpSwagger.URL("/api/docs/doc.json")))
}
