// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"todotrack/internal/modkit/httpkit"
	"todotrack/internal/services/api/stats/domain"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// per day rollup from clickhouse
	httpkit.Get(r, "/daily", h.daily)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Daily activity
// @Description Tracked seconds, intervals, edits and completions per UTC day
// @Tags Stats
// @Produce json
// @Security Bearer
// @Param days query int false "Window in days (1-90)" default(14)
// @Success 200 {array} domain.DailyRow "ok"
// @Failure 503 {object} httpkit.Envelope "analytics disabled"
// @Router /stats/daily [get]
func (h *handlers) daily(r *stdhttp.Request) (any, error) {
	user, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	days, err := httpkit.QueryInt(r, "days", domain.DefaultDays, 1, domain.MaxDays)
	if err != nil {
		return nil, err
	}
	return h.svc.Daily(r.Context(), user, days)
}
