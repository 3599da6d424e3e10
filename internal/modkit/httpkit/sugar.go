package httpkit

import (
	"net/http"

	phttp "todotrack/internal/platform/net/http"
)

// Get mounts a no-body handler on GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// Post mounts a no-body handler on POST
func Post(r Router, path string, h func(*http.Request) (any, error)) { phttp.PostNoBody(r, path, h) }

// Delete mounts a no-body handler on DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.DeleteNoBody(r, path, h)
}

// PostJSON mounts a handler with a validated T body on POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// PatchJSON mounts a handler with a validated T body on PATCH
func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PatchJSON(r, path, h)
}

// Param reads a path parameter
func Param(r *http.Request, key string) string { return phttp.URLParam(r, key) }
