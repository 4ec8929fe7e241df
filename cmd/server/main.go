package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mrc-extractor/internal/config"
	"mrc-extractor/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()
	cfg := container.GetConfig()
	logger := container.GetLogger()
	if syncer, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = syncer.Sync() }()
	}

	// Handlers
	extractionHandler := handler.NewExtractionHandler(
		container.Dispatcher,
		container.Scratch,
		cfg.GetMaxFileSize(),
		logger,
	)
	readabilityHandler := handler.NewReadabilityHandler(
		container.Classifier,
		cfg.GetMaxFileSize(),
		logger,
	)
	loggingMiddleware := handler.NewLoggingMiddleware(logger)

	// Router
	router := handler.NewRouter(
		extractionHandler,
		readabilityHandler,
		loggingMiddleware.Middleware,
		handler.RouterOptions{
			StaticDir:      cfg.GetStaticDir(),
			AllowedOrigins: cfg.GetAllowedOrigins(),
		},
	)

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		logger.Info("Server listening", "address", server.Addr, "scratch_dir", cfg.GetScratchDir())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	// In-flight extractions are not cancellable, so give them time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	logger.Info("Server exited")
}
