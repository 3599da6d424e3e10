// Package http provides http transport for history
package http

import (
	stdhttp "net/http"
	"strings"
	"time"

	"todotrack/internal/core/history"
	"todotrack/internal/modkit/httpkit"
	perr "todotrack/internal/platform/errors"
	"todotrack/internal/services/api/history/domain"
)

// Defaults apply when the request names no zone or locale
type Defaults struct {
	Location *time.Location
	Locale   string
}

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort, d Defaults) {
	h := &handlers{svc: s, def: d}
	httpkit.Get(r, "/", h.load)
	httpkit.Get(r, "/cached", h.cached)
}

type handlers struct {
	svc domain.ServicePort
	def Defaults
}

// @Summary Merged history grouped by day
// @Description Fetches time intervals and todo mutations, merges them newest first and groups them by local day
// @Tags History
// @Produce json
// @Security Bearer
// @Param tz query string false "IANA time zone, falls back to X-Timezone"
// @Param Accept-Language header string false "Locale for date labels"
// @Success 200 {object} history.View "ok"
// @Failure 422 {object} httpkit.Envelope "unknown time zone"
// @Router /history [get]
func (h *handlers) load(r *stdhttp.Request) (any, error) {
	req, err := h.request(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Load(r.Context(), req)
}

// @Summary Last loaded history
// @Tags History
// @Produce json
// @Security Bearer
// @Success 200 {object} domain.Cached "ok"
// @Router /history/cached [get]
func (h *handlers) cached(r *stdhttp.Request) (any, error) {
	req, err := h.request(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Cached(r.Context(), req)
}

func (h *handlers) request(r *stdhttp.Request) (domain.Request, error) {
	user, err := httpkit.User(r)
	if err != nil {
		return domain.Request{}, err
	}
	loc, err := h.location(r)
	if err != nil {
		return domain.Request{}, err
	}
	return domain.Request{
		User:     user,
		Location: loc,
		Locale:   history.MatchLocale(r.Header.Get("Accept-Language"), h.def.Locale),
	}, nil
}

func (h *handlers) location(r *stdhttp.Request) (*time.Location, error) {
	name := strings.TrimSpace(r.URL.Query().Get("tz"))
	if name == "" {
		name = strings.TrimSpace(r.Header.Get("X-Timezone"))
	}
	if name == "" {
		if h.def.Location != nil {
			return h.def.Location, nil
		}
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("unknown time zone %q", name), "tz")
	}
	return loc, nil
}
