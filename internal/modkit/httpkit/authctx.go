package httpkit

import (
	"net/http"

	perr "todotrack/internal/platform/errors"
	lnet "todotrack/internal/platform/net"

	"github.com/google/uuid"
)

// User returns the authenticated user id; only meaningful behind Protected
func User(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(lnet.UserID(r.Context()))
	if err != nil {
		return uuid.Nil, perr.Unauthorizedf("missing bearer token")
	}
	return id, nil
}
