// Package server sets up the HTTP server, router, and all route definitions.
//
// This is the wiring layer — the composition root where the dependency chain
// is assembled in one place:
//
//	sqlite.DB → ArticleService → ArticleHandler → routes
//
// Each layer only receives what it needs: the service gets the repository
// interface (not the concrete sqlite.DB), the handler gets the service, and
// nothing below the handler knows HTTP exists.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sakif/news-service/internal/handler"
	"github.com/sakif/news-service/internal/middleware"
	sqliteRepo "github.com/sakif/news-service/internal/repository/sqlite"
	"github.com/sakif/news-service/internal/service"
)

// Config holds server configuration. A struct (instead of parameters) means
// new options don't ripple through function signatures, and main can fill it
// from the environment in one place.
type Config struct {
	Port   int
	DBPath string
}

// Server owns the router and the database connection. The DB is closed during
// graceful shutdown — after the listener stops, never before.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server with its full dependency chain wired.
//
// Opening the database here also runs the schema initializer, so by the time
// New returns, both tables exist and the admin credential is seeded — Start
// can accept connections immediately without racing initialization.
//
// The repository/sqlite package is imported as sqliteRepo to keep it visually
// distinct from the sqlite driver.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE TABLE:
//
//	GET    /news       → list all articles (newest first)
//	GET    /news/{id}  → single article
//	POST   /news       → create
//	PUT    /news/{id}  → update title/content
//	DELETE /news/{id}  → delete
//
// The {id:[0-9]+} regex makes the router itself reject non-integer ids —
// GET /news/abc falls through to chi's 404 and never reaches a handler.
//
// MIDDLEWARE ORDER MATTERS — it executes in the order added:
// RequestID → RealIP → Recoverer → request logging → CORS.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID) // X-Request-ID for log correlation
	s.router.Use(chimiddleware.RealIP)    // real client IP from proxy headers
	s.router.Use(chimiddleware.Recoverer) // panics become 500s, not crashes

	s.router.Use(middleware.Logger(s.logger))

	// Cross-origin policy: any origin may call any endpoint. This mirrors the
	// open policy desktop clients already rely on — it's a configuration
	// surface to narrow later, not a security control today.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	articleService := service.NewArticleService(s.db, s.logger)
	articleHandler := handler.NewArticleHandler(articleService, s.logger)

	s.router.Get("/news", articleHandler.HandleList)
	s.router.Get("/news/{id:[0-9]+}", articleHandler.HandleGetByID)
	s.router.Post("/news", articleHandler.HandleCreate)
	s.router.Put("/news/{id:[0-9]+}", articleHandler.HandleUpdate)
	s.router.Delete("/news/{id:[0-9]+}", articleHandler.HandleDelete)
}

// Start runs the HTTP server until a shutdown signal or listener error.
//
// GRACEFUL SHUTDOWN:
// 1. Stop accepting new connections
// 2. Give in-flight requests 30s to finish
// 3. Close the database (flushes the WAL, releases the file lock)
//
// The deferred Close makes step 3 happen on every exit path.
func (s *Server) Start() error {
	defer s.db.Close()

	// Binding ":port" listens on all interfaces.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
