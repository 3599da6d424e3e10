// Package module wires todos into the API using modkit
package module

import (
	"todotrack/internal/modkit"
	"todotrack/internal/modkit/httpkit"
	str "todotrack/internal/platform/strings"
	actdom "todotrack/internal/services/activity/domain"
	todoshttp "todotrack/internal/services/api/todos/http"
	todosrepo "todotrack/internal/services/api/todos/repo"
	todossvc "todotrack/internal/services/api/todos/service"
)

// Ports are what todos needs from other modules; both are optional
type Ports struct {
	Activity actdom.Sink
	History  todossvc.Invalidator
}

// Module implements modkit.Module
type Module struct {
	b   modkit.Built
	svc *todossvc.Svc
}

// New constructs the todos module; pass Ports with modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("todos"), modkit.WithPrefix("/todos")}, opts...)...)

	var svcOpts []todossvc.Option
	if p, ok := b.Ports.(Ports); ok {
		if p.Activity != nil {
			svcOpts = append(svcOpts, todossvc.WithSink(p.Activity))
		}
		if p.History != nil {
			svcOpts = append(svcOpts, todossvc.WithInvalidator(p.History))
		}
	}
	return &Module{b: b, svc: todossvc.New(deps.PG, todosrepo.NewPG(), svcOpts...)}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		todoshttp.Register(rr, m.svc)
		m.b.Register(rr)
	})
}

// Ports exposes the todos service
func (m *Module) Ports() any { return todossvc.Service(m.svc) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
