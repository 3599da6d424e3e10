package http

import (
	stdhttp "net/http"

	"github.com/google/uuid"

	"todotrack/internal/modkit/httpkit"
)

func userAndID(r *stdhttp.Request) (uuid.UUID, uuid.UUID, error) {
	user, err := httpkit.User(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := httpkit.PathUUID(r, "id")
	return user, id, err
}
