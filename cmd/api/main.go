package main

import (
	"log"

	"resume-checker/internal/bootstrap"
	"resume-checker/internal/shared/config"
	"resume-checker/internal/shared/server"
	"resume-checker/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer telemetry.Sync()

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.starting", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
