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

	"github.com/art-nursing/backend/internal/api"
	"github.com/art-nursing/backend/internal/cache"
	"github.com/art-nursing/backend/internal/config"
	"github.com/art-nursing/backend/internal/database"
	"github.com/art-nursing/backend/internal/upload"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("[main] Starting Art Nursing College API (env=%s)", cfg.Env)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to MongoDB
	dbCfg := database.DefaultConfig(cfg.MongoURI, cfg.MongoDatabase)
	db, err := database.New(ctx, dbCfg)
	if err != nil {
		log.Fatalf("[main] Failed to connect to database: %v", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		db.Close(closeCtx)
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("[main] Failed to ensure indexes: %v", err)
	}

	// Connect to Redis when configured; the API runs without it
	var redisCache *cache.Redis
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("[main] Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
	} else {
		log.Println("[main] Redis not configured, using in-memory rate limiting and no response cache")
	}

	// Prepare the upload store
	uploads, err := upload.NewStore(cfg.UploadDir, cfg.UploadMaxBytes)
	if err != nil {
		log.Fatalf("[main] Failed to prepare upload directory: %v", err)
	}

	// Create router
	router := api.NewRouter(cfg, db, redisCache, uploads)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("[main] Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[main] Shutting down server...")

	// Give outstanding requests time to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] Server forced to shutdown: %v", err)
	}

	log.Println("[main] Server stopped")
}
