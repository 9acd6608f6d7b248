// Package server exposes the aggregation pipeline over a JSON HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/eduscout/eduscout/internal/config"
	"github.com/eduscout/eduscout/internal/history"
	"github.com/eduscout/eduscout/internal/search"
)

type Server struct {
	cfg     config.Config
	agg     *search.Aggregator
	orch    *search.Orchestrator
	hist    *history.Store // nil when history is disabled
	version string
	httpSrv *http.Server
}

func New(cfg config.Config, agg *search.Aggregator, orch *search.Orchestrator, hist *history.Store, version string) *Server {
	return &Server{
		cfg:     cfg,
		agg:     agg,
		orch:    orch,
		hist:    hist,
		version: version,
	}
}

// Start sets up routes and starts the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	s.routes(mux)

	handler := recoveryMiddleware(loggingMiddleware(corsMiddleware(mux)))

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	slog.Info("Starting server", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/documents", s.handleDocument)
	mux.HandleFunc("GET /api/history", s.handleHistory)
}
