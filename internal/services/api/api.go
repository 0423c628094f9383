// Package api provides the HTTP API for the application
package api

import (
	"csvforge/internal/platform/config"
	"csvforge/internal/platform/logger"
	phttp "csvforge/internal/platform/net/http"
	"csvforge/internal/platform/store"

	"csvforge/internal/modkit"
	"csvforge/internal/modkit/httpkit"
	"csvforge/internal/modkit/module"

	metamod "csvforge/internal/services/api/meta/module"
	convertmod "csvforge/internal/services/convert/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}

	mods := []modkit.Module{
		metamod.New(deps),
		convertmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountSwagger(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name (for cross module lookups)
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}
