// Package server assembles the HTTP surface: public content reads, the
// OAuth login endpoints and the token-gated write routes.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kishordev/portfolio-api/internal/auth"
	"github.com/kishordev/portfolio-api/internal/config"
	"github.com/kishordev/portfolio-api/internal/logger"
	"github.com/kishordev/portfolio-api/internal/metrics"
	"github.com/kishordev/portfolio-api/internal/portfolio"
	"github.com/kishordev/portfolio-api/internal/utils"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Server represents the portfolio API server instance.
type Server struct {
	config     *config.Config
	httpServer *http.Server
}

// NewServer creates a new server with all routes registered.
func NewServer(
	cfg *config.Config,
	authService *auth.Service,
	portfolioHandler *portfolio.Handler,
	collector *metrics.Collector,
) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handleRoot)
	mux.HandleFunc("/", handleNotFound)
	mux.Handle("GET /metrics", collector.Handler())

	authService.RegisterRoutes(mux)
	portfolioHandler.RegisterRoutes(mux, authService.Authenticate())

	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      collector.Middleware(mux),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Start begins serving. It returns once the listener is accepting; server
// errors after that shut the process down through the fx shutdowner.
func (s *Server) Start(shutdowner fx.Shutdowner) {
	go func() {
		logger.Info("Starting server", zap.String("address", s.httpServer.Addr))

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", zap.Error(err))
			if err := shutdowner.Shutdown(); err != nil {
				logger.Error("Shutdown failed", zap.Error(err))
			}
		}
	}()
}

// Stop drains in-flight requests and closes the listener.
func (s *Server) Stop(ctx context.Context) error {
	logger.Info("Shutting down server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("Kishor's Portfolio Backend API")); err != nil {
		logger.Error("Failed to write root response", zap.Error(err))
	}
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, "Not Found")
}

func register(lc fx.Lifecycle, shutdowner fx.Shutdowner, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start(shutdowner)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}

// Module provides the server dependencies
var Module = fx.Module("server",
	fx.Provide(
		NewServer,
	),
	fx.Invoke(register),
)
