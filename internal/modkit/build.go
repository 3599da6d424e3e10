package modkit

import (
	"net/http"

	"todotrack/internal/modkit/httpkit"
	str "todotrack/internal/platform/strings"
)

// Option configures a module at construction
type Option func(*buildCfg)

type buildCfg struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	auth      httpkit.Authenticator
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// Built is the resolved option set a module keeps
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	Auth      httpkit.Authenticator
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build resolves opts, filling no-op router hooks
func Build(opts ...Option) Built {
	c := buildCfg{
		subrouter: func(r httpkit.Router) httpkit.Router { return r },
		register:  func(httpkit.Router) {},
	}
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Auth:      c.auth,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// WithName names the module in logs
func WithName(name string) Option { return func(c *buildCfg) { c.name = name } }

// WithPrefix mounts the module under prefix (e.g. "/todos"); "todos/" is normalised and "/" panics
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = str.MustPrefix(prefix) }
}

// WithMiddlewares appends module-level middleware
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts injects a port set owned by another module
func WithPorts[T any](p T) Option { return func(c *buildCfg) { c.ports = p } }

// WithAuth protects every route of the module with bearer auth
func WithAuth(a httpkit.Authenticator) Option { return func(c *buildCfg) { c.auth = a } }

// WithSubrouter wraps the module router before routes are registered
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(c *buildCfg) { c.subrouter = fn }
}

// WithRegister overrides route registration (tests use it to mount fakes)
func WithRegister(fn func(httpkit.Router)) Option { return func(c *buildCfg) { c.register = fn } }

// Mount is the MountRoutes body shared by modules: prefix, middleware, optional auth, then register
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	if register == nil {
		register = b.Register
	}
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(sub httpkit.Router) {
		sub = b.Subrouter(sub)
		if b.Auth == nil {
			register(sub)
			return
		}
		httpkit.Protected(sub, b.Auth, register)
	})
}
