// Package module wires time tracking into the API using modkit
package module

import (
	"todotrack/internal/modkit"
	"todotrack/internal/modkit/httpkit"
	str "todotrack/internal/platform/strings"
	actdom "todotrack/internal/services/activity/domain"
	timeshttp "todotrack/internal/services/api/times/http"
	timesrepo "todotrack/internal/services/api/times/repo"
	timessvc "todotrack/internal/services/api/times/service"
)

// Ports are what times needs from other modules; both are optional
type Ports struct {
	Activity actdom.Sink
	History  timessvc.Invalidator
}

// Module implements modkit.Module
type Module struct {
	b   modkit.Built
	svc *timessvc.Svc
}

// New constructs the times module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("times"), modkit.WithPrefix("/times")}, opts...)...)

	var svcOpts []timessvc.Option
	if p, ok := b.Ports.(Ports); ok {
		if p.Activity != nil {
			svcOpts = append(svcOpts, timessvc.WithSink(p.Activity))
		}
		if p.History != nil {
			svcOpts = append(svcOpts, timessvc.WithInvalidator(p.History))
		}
	}
	return &Module{b: b, svc: timessvc.New(deps.PG, timesrepo.NewPG(), svcOpts...)}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		timeshttp.Register(rr, m.svc)
		m.b.Register(rr)
	})
}

// Ports exposes the times service
func (m *Module) Ports() any { return timessvc.Service(m.svc) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
