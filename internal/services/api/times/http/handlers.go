// Package http provides http transport for time intervals
package http

import (
	stdhttp "net/http"

	"github.com/google/uuid"

	"todotrack/internal/modkit/httpkit"
	"todotrack/internal/services/api/times/domain"
)

// Register mounts the interval endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Post(r, "/{todo}/start", h.start)
	httpkit.Post(r, "/{todo}/stop", h.stop)
}

type handlers struct{ svc domain.ServicePort }

// @Summary List tracked intervals
// @Tags Times
// @Produce json
// @Security Bearer
// @Success 200 {array} domain.Interval "ok"
// @Router /times [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	user, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), user)
}

// @Summary Start timing a todo
// @Tags Times
// @Produce json
// @Security Bearer
// @Param todo path string true "Todo id"
// @Success 201 {object} domain.Interval "started"
// @Failure 409 {object} httpkit.Envelope "already running"
// @Router /times/{todo}/start [post]
func (h *handlers) start(r *stdhttp.Request) (any, error) {
	user, todo, err := userAndTodo(r)
	if err != nil {
		return nil, err
	}
	iv, err := h.svc.Start(r.Context(), user, todo)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(iv), nil
}

// @Summary Stop the running timer of a todo
// @Tags Times
// @Produce json
// @Security Bearer
// @Param todo path string true "Todo id"
// @Success 200 {object} domain.Interval "stopped"
// @Failure 404 {object} httpkit.Envelope "no running timer"
// @Router /times/{todo}/stop [post]
func (h *handlers) stop(r *stdhttp.Request) (any, error) {
	user, todo, err := userAndTodo(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Stop(r.Context(), user, todo)
}

func userAndTodo(r *stdhttp.Request) (uuid.UUID, uuid.UUID, error) {
	user, err := httpkit.User(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := httpkit.PathUUID(r, "todo")
	return user, id, err
}
