// Entry point for the timetab HTTP service: schedule document upload,
// parsing, and extraction history, with an optional MCP stdio surface.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/schoolware/timetab/server"
	"github.com/schoolware/timetab/shield"
	"github.com/schoolware/timetab/store"
)

func main() {
	cfg := loadConfig()

	var lvl slog.Level
	switch cfg.LogLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("open store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Seed the rate limit rule for the upload endpoint. Rules live in
	// the database and reload every minute, so operators can tune them
	// without a restart.
	if cfg.RateLimit.MaxRequests > 0 {
		if err := shield.SetRule(st.DB(), "POST /extract", cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds); err != nil {
			slog.Error("seed rate limit", "error", err)
			os.Exit(1)
		}
	}

	srv := server.New(cfg, st, logger)
	handler := srv.Routes()
	srv.RateLimiter().StartReloader(ctx.Done())

	// MCP stdio mode replaces the HTTP server entirely; stdout belongs
	// to the protocol, so logs go to stderr.
	if env("MCP_TRANSPORT", "") == "stdio" {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
		slog.SetDefault(logger)

		mcpSrv := mcp.NewServer(&mcp.Implementation{
			Name:    "timetab",
			Version: "1.0.0",
		}, nil)
		srv.RegisterMCP(mcpSrv)

		slog.Info("MCP stdio starting")
		if err := mcpSrv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			slog.Error("MCP stdio", "error", err)
			os.Exit(1)
		}
		return
	}

	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Listen)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

// loadConfig reads the YAML config named by CONFIG (if set) and applies
// environment overrides on top.
func loadConfig() *server.Config {
	cfg := server.DefaultConfig()
	if path := env("CONFIG", ""); path != "" {
		loaded, err := server.LoadConfig(path)
		if err != nil {
			slog.Error("load config", "path", path, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Listen = ":" + v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("UPLOADS_DIR"); v != "" {
		cfg.UploadsDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
