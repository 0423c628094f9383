// @title         csvforge API
// @version       0.1.0
// @description   CSV to JSON conversion and serializer code generation

package main

import (
	"context"

	"csvforge/internal/platform/config"
	"csvforge/internal/platform/logger"
	phttp "csvforge/internal/platform/net/http"
	"csvforge/internal/platform/store"

	"csvforge/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	// open the platform store; postgres only backs the optional run
	// ledger so it is off unless configured
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "csvforge-api",
			PG: store.PGConfig{
				Enabled:     pgCfg.MayBool("ENABLED", false),
				URL:         pgCfg.MayString("DBURL", ""),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := st.Guard(context.Background()); err != nil {
		l.Panic().Err(err).Msg("store guard failed")
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
