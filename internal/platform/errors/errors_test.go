package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCode(999), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Errorf("HTTPStatusCode(%s) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestWrapChain(t *testing.T) {
	cause := stderrs.New("socket closed")
	err := fmt.Errorf("load: %w", Wrap(cause, ErrorCodeUnavailable, "fetch times"))

	if !IsCode(err, ErrorCodeUnavailable) {
		t.Fatalf("CodeOf = %s", CodeOf(err))
	}
	if Root(err) != cause {
		t.Fatalf("Root = %v", Root(err))
	}
	if got := err.Error(); got != "load: fetch times: socket closed" {
		t.Fatalf("Error() = %q", got)
	}

	status, w := HTTP(err)
	if status != http.StatusServiceUnavailable || w.Message != "fetch times" {
		t.Fatalf("HTTP = %d %+v", status, w)
	}
}

func TestHTTPForeignAndNil(t *testing.T) {
	if s, w := HTTP(nil); s != http.StatusOK || w != (Wire{}) {
		t.Fatalf("nil: %d %+v", s, w)
	}
	s, w := HTTP(stderrs.New("boom"))
	if s != http.StatusInternalServerError || w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("foreign: %d %+v", s, w)
	}
	if IsCode(nil, ErrorCodeUnknown) {
		t.Fatal("nil has no code")
	}
}

func TestWithFieldAndOpCopy(t *testing.T) {
	base := InvalidArgf("bad %s", "tz")
	withField := WithField(base, "tz")
	withOp := WithOp(withField, "history.load")

	e, _ := As(withOp)
	if e.Field() != "tz" || e.Op() != "history.load" {
		t.Fatalf("field/op = %q/%q", e.Field(), e.Op())
	}
	if b, _ := As(base); b.Field() != "" || b.Op() != "" {
		t.Fatal("mutators must not touch the original")
	}
	foreign := stderrs.New("x")
	if WithField(foreign, "f") != foreign || WithOp(foreign, "o") != foreign {
		t.Fatal("foreign errors pass through")
	}
	if e.ToWire().Field != "tz" {
		t.Fatal("wire field")
	}
}

func TestSugarCodes(t *testing.T) {
	cases := map[ErrorCode]error{
		ErrorCodeNotFound:        NotFoundf("todo %d", 1),
		ErrorCodeInvalidArgument: InvalidArgf("x"),
		ErrorCodeValidation:      Validationf("x"),
		ErrorCodeJSON:            JSONErrf("x"),
		ErrorCodeConflict:        Conflictf("x"),
		ErrorCodeUnauthorized:    Unauthorizedf("x"),
		ErrorCodeUnavailable:     Unavailablef("x"),
		ErrorCodePanic:           PanicErrf("x"),
	}
	for want, err := range cases {
		if CodeOf(err) != want {
			t.Errorf("%v: code %s, want %s", err, CodeOf(err), want)
		}
	}
	if ErrorCode(200).String() != "unknown" || ErrorCodeNotFound.String() != "not_found" {
		t.Fatal("String()")
	}
}
