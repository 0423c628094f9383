// Command csvforge-echod runs the single-session TCP echo listener
package main

import (
	"context"

	"csvforge/internal/platform/config"
	"csvforge/internal/platform/logger"
	"csvforge/internal/services/echo"
)

func main() {
	cfg := config.New().Prefix("ECHO_")
	l := logger.Get()

	srv := echo.NewServer(cfg.MayString("ADDR", echo.DefaultAddr))
	if err := srv.Serve(context.Background()); err != nil {
		l.Fatal().Err(err).Msg("echo server stopped")
	}
}
