// Command csvforge-echo sends one payload to the echo listener and
// prints the reply. The payload comes from -data, or from converting
// the built-in sample dataset when -data is empty
package main

import (
	"context"
	"flag"
	"fmt"

	"csvforge/internal/platform/config"
	"csvforge/internal/platform/logger"
	"csvforge/internal/services/convert/repo"
	convertsvc "csvforge/internal/services/convert/service"
	"csvforge/internal/services/echo"
)

func main() {
	data := flag.String("data", "", "payload to send; empty sends the sample dataset as JSON")
	flag.Parse()

	cfg := config.New().Prefix("ECHO_")
	l := logger.Get()

	payload := []byte(*data)
	if len(payload) == 0 {
		svc := convertsvc.New(nil, repo.NewPG(), convertsvc.Config{})
		res, err := svc.Sample(context.Background())
		if err != nil {
			l.Fatal().Err(err).Msg("building sample payload")
		}
		payload = []byte(res.Result.JSON)
	}

	c := echo.NewClient(cfg.MayString("ADDR", echo.DefaultAddr))
	reply, err := c.Send(payload)
	if err != nil {
		l.Fatal().Err(err).Msg("echo round trip failed")
	}
	fmt.Printf("Received: %s\n", reply)
}
