package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"socialnet-backend/infrastructure/config"
	"socialnet-backend/infrastructure/di"
	"socialnet-backend/interfaces/http/rest"
)

func main() {
	// Initialize context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependency container
	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Seed the network from the data file if it exists
	if _, statErr := os.Stat(cfg.DataFile); statErr == nil {
		if err := container.Service.LoadFromFile(cfg.DataFile); err != nil {
			container.Logger.Warn("Could not load initial network",
				zap.String("path", cfg.DataFile),
				zap.Error(err),
			)
		}
	}

	// Optionally follow external changes to the data file
	if cfg.WatchDataFile {
		go func() {
			err := container.Store.Watch(ctx, cfg.DataFile, container.Service.Replace)
			if err != nil && !errors.Is(err, context.Canceled) {
				container.Logger.Error("File watcher stopped", zap.Error(err))
			}
		}()
	}

	// Create router
	router := rest.NewRouter(container.Service, cfg, container.Logger)
	handler := router.Setup()

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		container.Logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
			zap.String("dataFile", cfg.DataFile),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	container.Logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Server shutdown error", zap.Error(err))
	}

	if err := container.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	log.Println("Server stopped")
}
