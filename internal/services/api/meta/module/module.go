// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"todotrack/internal/modkit"
	"todotrack/internal/modkit/httpkit"
	str "todotrack/internal/platform/strings"

	metahttp "todotrack/internal/services/api/meta/http"
)

// ServiceName is reported by /meta endpoints
const ServiceName = "todotrack-api"

// Module implements modkit.Module
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module. Meta routes are never behind auth.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	d := metahttp.Deps{ServiceName: ServiceName, StartedAt: time.Now()}
	// typed nil seams must stay untyped nil so ready reports skipped
	if deps.PG != nil {
		d.PG = deps.PG
	}
	if deps.CH != nil {
		d.CH = deps.CH
	}
	return &Module{b: b, deps: d}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, m.deps)
		m.b.Register(rr)
	})
}

// Ports implements modkit.Module
func (m *Module) Ports() any { return nil }

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }
