package http

import "net/http"

// GetJSON mounts a no-body handler on GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, NoBodyHandler(h))
}

// PostNoBody mounts a no-body handler on POST
func PostNoBody(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, NoBodyHandler(h))
}

// DeleteNoBody mounts a no-body handler on DELETE
func DeleteNoBody(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, NoBodyHandler(h))
}

// PostJSON mounts a handler with a validated T body on POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONHandler(h))
}

// PatchJSON mounts a handler with a validated T body on PATCH
func PatchJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Patch(path, JSONHandler(h))
}
