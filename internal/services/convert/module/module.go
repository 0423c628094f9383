// Package module wires the convert service into the API using modkit
package module

import (
	"net/http"

	modkit "csvforge/internal/modkit"
	"csvforge/internal/modkit/httpkit"
	"csvforge/internal/services/convert/domain"
	converthttp "csvforge/internal/services/convert/http"
	"csvforge/internal/services/convert/repo"
	convertsvc "csvforge/internal/services/convert/service"
)

// Ports exposed by the convert module
type Ports struct {
	Service domain.ServicePort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *convertsvc.Service
}

// New constructs a convert module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("convert"),
		modkit.WithPrefix(""),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	svc := convertsvc.New(deps.PG, repo.NewPG(), cfg)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		converthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	mount := func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	}
	if m.prefix == "" {
		mount(r)
		return
	}
	r.Route(m.prefix, mount)
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }
