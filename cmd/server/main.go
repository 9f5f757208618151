// Package main is the entry point for the news service.
//
// The main package stays minimal — its job is to:
//  1. Read configuration from the environment
//  2. Create dependencies (logger, server)
//  3. Start the application
//
// All actual logic lives in imported packages (internal/server and below).
// The cmd/server/ layout is the Go convention for executable entry points;
// a project with more binaries would add cmd/<name>/ directories beside it.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/sakif/news-service/internal/server"
)

// config is filled from the environment by struct tags. PORT picks the
// listening TCP port; DB_PATH overrides where the SQLite file lives (the
// default keeps it next to wherever the process runs, e.g.
// DB_PATH=/var/lib/news/news_system.db for a packaged deployment).
type config struct {
	Port   int    `env:"PORT" envDefault:"5000"`
	DBPath string `env:"DB_PATH" envDefault:"news_system.db"`
}

func defaultConfig() config {
	return config{Port: 5000, DBPath: "news_system.db"}
}

func main() {
	// slog.NewTextHandler writes human-readable structured logs to stdout.
	// Levels from least to most severe: Debug → Info → Warn → Error.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// A malformed environment (say, PORT=abc) falls back to the defaults
	// with a warning instead of refusing to start — the service has always
	// come up on 5000 when the platform hands it garbage.
	cfg := defaultConfig()
	if err := env.Parse(&cfg); err != nil {
		logger.Warn("invalid environment configuration, using defaults",
			slog.String("error", err.Error()),
		)
		cfg = defaultConfig()
	}

	// Ensure the database's parent directory exists (like `mkdir -p`) so a
	// DB_PATH pointing into a fresh volume doesn't fail the first boot.
	if dbDir := filepath.Dir(cfg.DBPath); dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dbDir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	// server.New opens the database and runs the schema initializer — by the
	// time it returns, tables exist and the admin row is seeded.
	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		DBPath: cfg.DBPath,
	}, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until the server is shut down (Ctrl+C or SIGTERM).
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
