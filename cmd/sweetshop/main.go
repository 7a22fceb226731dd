// ABOUTME: Entry point for the sweetshop API server
// ABOUTME: Loads config, wires auth and storage, serves until interrupted

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katasweets/sweetshop/internal/api"
	"github.com/katasweets/sweetshop/internal/auth"
	"github.com/katasweets/sweetshop/internal/config"
	"github.com/katasweets/sweetshop/internal/store"
)

func main() {
	configPath := flag.String("config", "sweetshop.yaml", "path to the config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)
	slog.SetDefault(logger)

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	admin, err := auth.NewAdminRecord(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
	if err != nil {
		return fmt.Errorf("building admin record: %w", err)
	}

	tokens := auth.NewTokenService([]byte(cfg.Auth.JWTSecret))
	verifier := auth.NewCredentialVerifier(admin, st)
	resolver := auth.NewPrincipalResolver(admin, st)

	server := api.NewServer(st, st, tokens, verifier, resolver, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("sweetshop starting", "addr", cfg.Server.HTTPAddr, "admin", cfg.Auth.AdminEmail)
	return server.Run(ctx, cfg.Server.HTTPAddr)
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
