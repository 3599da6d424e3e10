package httpkit

import (
	"net/http"
	"strconv"
	"strings"

	perr "todotrack/internal/platform/errors"

	"github.com/google/uuid"
)

// PathUUID parses a uuid path parameter; malformed ids are InvalidArgument on that field
func PathUUID(r *http.Request, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(Param(r, key))
	if err != nil {
		return uuid.Nil, perr.WithField(perr.InvalidArgf("%s must be a uuid", key), key)
	}
	return id, nil
}

// QueryInt reads an integer query parameter bounded to [lo, hi]; missing means def
func QueryInt(r *http.Request, key string, def, lo, hi int) (int, error) {
	s := strings.TrimSpace(r.URL.Query().Get(key))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, perr.WithField(perr.InvalidArgf("%s must be an integer in [%d, %d]", key, lo, hi), key)
	}
	return n, nil
}
