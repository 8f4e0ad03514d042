package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	httpapi "comply/internal/http"
	"comply/internal/platform/config"
	"comply/internal/platform/httpserver"
	"comply/internal/platform/logger"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, err := buildInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer in.Close(log)

	application := buildApp(cfg, in, log)
	router := httpapi.NewRouter(httpapi.Deps{
		Logger:       log,
		Metrics:      in.HTTPMetrics,
		Validator:    application.Validator,
		AdminToken:   cfg.AdminToken,
		Health:       in.HealthHandler(log),
		Global:       application.Global,
		Organization: application.Organization,
	})

	log.Info("starting comply", "addr", cfg.Addr, "environment", cfg.Environment)
	err = httpserver.Serve(ctx, httpserver.New(cfg.Addr, router), cfg.ShutdownTimeout)
	log.Info("http server drained")
	return err
}
