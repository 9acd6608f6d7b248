package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/eduscout/eduscout/internal/config"
	"github.com/eduscout/eduscout/internal/history"
	"github.com/eduscout/eduscout/internal/scoring"
	"github.com/eduscout/eduscout/internal/search"
	"github.com/eduscout/eduscout/internal/serpapi"
	"github.com/eduscout/eduscout/internal/server"
	"github.com/eduscout/eduscout/internal/youtube"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Eduscout %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Eduscout", "version", version)

	if cfg.Providers.YouTubeAPIKey == "" {
		slog.Warn("YOUTUBE_API_KEY not set; search requests will fail until it is configured")
	}
	if cfg.Providers.SerpAPIKey == "" {
		slog.Info("SERPAPI_KEY not set; article and PDF search disabled")
	}

	scorer := scoring.New(cfg.Scoring)

	videoProvider := youtube.New(cfg.Providers.YouTubeAPIKey, scorer)

	var articleProvider search.Provider
	if sp := serpapi.New(cfg.Providers.SerpAPIKey, scorer, cfg.Scoring.ArticleDomains); sp.Configured() {
		articleProvider = sp
	}

	agg := search.NewAggregator(videoProvider, articleProvider)
	orch := search.NewOrchestrator(agg)

	var hist *history.Store
	if cfg.Database.Path != "" {
		hist, err = history.New(cfg.Database.Path)
		if err != nil {
			slog.Warn("Search history disabled", "path", cfg.Database.Path, "error", err)
			hist = nil
		} else {
			defer hist.Close()
			slog.Info("Search history enabled", "path", cfg.Database.Path)
		}
	}

	srv := server.New(cfg, agg, orch, hist, version)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		srv.Shutdown(context.Background())
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
