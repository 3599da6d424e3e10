package net

import (
	"net/http"

	perr "todotrack/internal/platform/errors"
)

// Wire is the response envelope every endpoint returns
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(status int, reqID string, data any) (int, Wire) {
	return status, Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// OK is a 200 with data
func OK(data any, reqID string) (int, Wire) { return envelope(http.StatusOK, reqID, data) }

// Created is a 201 with data
func Created(data any, reqID string) (int, Wire) { return envelope(http.StatusCreated, reqID, data) }

// NoContent is a 204
func NoContent(reqID string) (int, Wire) { return envelope(http.StatusNoContent, reqID, nil) }

// Error maps err through perr; nil is treated as OK
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status, pw := perr.HTTP(err)
	_, w := envelope(status, reqID, nil)
	w.Code, w.Error, w.Field = pw.Code, pw.Message, pw.Field
	return status, w
}
