// Package http provides http transport for todos
package http

import (
	stdhttp "net/http"

	"todotrack/internal/modkit/httpkit"
	"todotrack/internal/services/api/todos/domain"
)

// Register mounts todos endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON(r, "/", h.create)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PatchJSON(r, "/{id}", h.update)
	httpkit.Post(r, "/{id}/toggle", h.toggle)
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc domain.ServicePort }

// @Summary List todos
// @Tags Todos
// @Produce json
// @Security Bearer
// @Success 200 {array} domain.Todo "ok"
// @Router /todos [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	user, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), user)
}

// @Summary Create a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Security Bearer
// @Param payload body domain.CreateInput true "Todo"
// @Success 201 {object} domain.Todo "created"
// @Router /todos [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	user, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	t, err := h.svc.Create(r.Context(), user, in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(t), nil
}

// @Summary Get a todo
// @Tags Todos
// @Produce json
// @Security Bearer
// @Param id path string true "Todo id"
// @Success 200 {object} domain.Todo "ok"
// @Router /todos/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	user, id, err := userAndID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), user, id)
}

// @Summary Edit text and/or done
// @Tags Todos
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Todo id"
// @Param payload body domain.UpdateInput true "Changes"
// @Success 200 {object} domain.Todo "ok"
// @Router /todos/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	user, id, err := userAndID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Update(r.Context(), user, id, in)
}

// @Summary Flip done
// @Tags Todos
// @Produce json
// @Security Bearer
// @Param id path string true "Todo id"
// @Success 200 {object} domain.Todo "ok"
// @Router /todos/{id}/toggle [post]
func (h *handlers) toggle(r *stdhttp.Request) (any, error) {
	user, id, err := userAndID(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Toggle(r.Context(), user, id)
}

// @Summary Delete a todo with its history
// @Tags Todos
// @Security Bearer
// @Param id path string true "Todo id"
// @Success 204
// @Router /todos/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	user, id, err := userAndID(r)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(r.Context(), user, id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
