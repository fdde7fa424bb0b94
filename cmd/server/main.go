package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hireboard/internal/api/routes"
	"hireboard/internal/applications"
	"hireboard/internal/audit"
	"hireboard/internal/config"
	"hireboard/internal/dashboard"
	"hireboard/internal/logging"
	"hireboard/internal/lookup"
	"hireboard/internal/refdata"
	"hireboard/internal/store"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Hireboard Recruiting Dashboard")

	// Load reference data
	refData, err := refdata.Load()
	if err != nil {
		logger.Fatal("Failed to load reference data", map[string]interface{}{"error": err.Error()})
	}

	// Initialize the posting store, falling back to memory when Redis is
	// unavailable or not configured
	st := newStore(cfg, logger)
	defer st.Close()

	// Initialize the candidate application manager
	appManager, err := applications.NewManager()
	if err != nil {
		logger.Fatal("Failed to load candidate data", map[string]interface{}{"error": err.Error()})
	}

	// Initialize the city lookup resolver
	cityResolver := lookup.NewCityResolver(refData.Cities, cfg.Lookup.Delay, cfg.Lookup.MaxResults)

	// Initialize the audit trail and dashboard
	trail := audit.NewLog()
	dash := dashboard.New(cfg, st, trail)

	hydrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := dash.Hydrate(hydrateCtx); err != nil {
		logger.Fatal("Failed to hydrate posting collection", map[string]interface{}{"error": err.Error()})
	}
	logger.Info("Posting collection hydrated", map[string]interface{}{
		"postings": len(dash.Postings()),
	})

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, routes.Deps{
		Dashboard:    dash,
		Trail:        trail,
		Store:        st,
		RefData:      refData,
		CityResolver: cityResolver,
		Applications: appManager,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}

// newStore builds the configured storage backend. Redis is probed once at
// startup; if it is unreachable the session runs on the in-memory store.
func newStore(cfg *config.Config, logger logging.Logger) store.Store {
	if cfg.Storage.Backend != "redis" {
		logger.Info("Using in-memory posting store")
		return store.NewMemoryStore()
	}

	redisStore := store.NewRedisStore(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Redis.Timeout)
	defer cancel()
	if err := redisStore.Ping(ctx); err != nil {
		logger.Warn("Redis unreachable, falling back to in-memory store", map[string]interface{}{
			"url":   cfg.Storage.Redis.URL,
			"error": err.Error(),
		})
		redisStore.Close()
		return store.NewMemoryStore()
	}

	logger.Info("Using Redis posting store", map[string]interface{}{"key": cfg.Storage.Key})
	return redisStore
}
