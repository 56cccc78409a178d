package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/banksim/infra/initializer"
	"github.com/amirasaad/banksim/pkg/app"
	"github.com/amirasaad/banksim/pkg/config"
	"github.com/amirasaad/banksim/webapi"
	log "github.com/charmbracelet/log"
)

// @title Bank Simulation API
// @version 1.0.0
// @description Accounts with OTP verification and transfers between them.
// @contact.name API Support
// @license.name MIT
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer cleanup()

	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Shutting down server")
		_ = fiberApp.Shutdown()
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"atomic_transfers", cfg.Transfer.Atomic,
	)
	return fiberApp.Listen(addr)
}
