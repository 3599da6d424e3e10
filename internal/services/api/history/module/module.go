// Package module wires history into the API using modkit
package module

import (
	"todotrack/internal/core/history"
	"todotrack/internal/modkit"
	"todotrack/internal/modkit/httpkit"
	str "todotrack/internal/platform/strings"
	histhttp "todotrack/internal/services/api/history/http"
	histrepo "todotrack/internal/services/api/history/repo"
	histsvc "todotrack/internal/services/api/history/service"
)

// Ports carries the process wide cache in; a nil Cache gets a private one
type Ports struct {
	Cache *history.Cache
}

// Module implements modkit.Module
type Module struct {
	b    modkit.Built
	svc  *histsvc.Svc
	defs histhttp.Defaults
}

// New constructs the history module. HISTORY_DEFAULT_TZ and HISTORY_DEFAULT_LOCALE set the fallbacks.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("history"), modkit.WithPrefix("/history")}, opts...)...)

	cache := history.NewCache()
	if p, ok := b.Ports.(Ports); ok && p.Cache != nil {
		cache = p.Cache
	}
	cfg := deps.Cfg.Prefix("HISTORY_")
	return &Module{
		b:   b,
		svc: histsvc.New(deps.PG, histrepo.NewPG(), cache),
		defs: histhttp.Defaults{
			Location: cfg.MayLocation("DEFAULT_TZ", "UTC"),
			Locale:   cfg.MayString("DEFAULT_LOCALE", "en-US"),
		},
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		histhttp.Register(rr, m.svc, m.defs)
		m.b.Register(rr)
	})
}

// Ports exposes the history service; todos and times use it to invalidate snapshots
func (m *Module) Ports() any { return histsvc.Service(m.svc) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
