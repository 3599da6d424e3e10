package http

import (
	"encoding/json"
	stdhttp "net/http"

	lnet "todotrack/internal/platform/net"
)

// Envelope is the body of every response
type Envelope = lnet.Wire

// JSON writes v with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes err as an error envelope; used by middleware outside Handle
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := lnet.Error(err, lnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// Response is what return-style handlers produce. An error Body becomes an error envelope.
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a return-style handler
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).write(w, r) }
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if resp.Status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	env := Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  lnet.RequestID(r.Context()),
		Data:       resp.Body,
	}
	JSON(w, status, env)
}

// OK is a 200
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created is a 201
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent is a 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error maps err to its status and envelope
func Error(err error) Response { return Response{Body: err} }
