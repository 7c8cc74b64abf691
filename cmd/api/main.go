// @title        Heart Risk API
// @version      1.0
// @description  Rule-based heart-disease risk screening with diet recommendations.
// @BasePath     /
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"heart-risk-api/internal/bootstrap"
	"heart-risk-api/internal/shared/config"
	"heart-risk-api/internal/shared/server"
	"heart-risk-api/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.SetLevel(cfg.LogLevel)

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := server.Addr(cfg.Port)
	if err := server.Serve(ctx, addr, app.Router, cfg.ShutdownTimeout); err != nil {
		log.Fatalf("server error: %v", err)
	}
	telemetry.Info("server.stopped", nil)
}
