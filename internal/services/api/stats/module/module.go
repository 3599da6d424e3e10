// Package module wires stats into the API using modkit
package module

import (
	"todotrack/internal/modkit"
	"todotrack/internal/modkit/httpkit"
	str "todotrack/internal/platform/strings"
	statshttp "todotrack/internal/services/api/stats/http"
	statsrepo "todotrack/internal/services/api/stats/repo"
	statssvc "todotrack/internal/services/api/stats/service"
)

// Module implements modkit.Module
type Module struct {
	b   modkit.Built
	svc *statssvc.Svc
}

// New constructs the stats module. Without ClickHouse every route answers 503.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("stats"), modkit.WithPrefix("/stats")}, opts...)...)

	var r statsrepo.Repo
	if deps.CH != nil {
		r = statsrepo.NewCH(deps.CH)
	}
	return &Module{b: b, svc: statssvc.New(r)}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		statshttp.Register(rr, m.svc)
		m.b.Register(rr)
	})
}

// Ports exposes the stats service
func (m *Module) Ports() any { return statssvc.Service(m.svc) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
