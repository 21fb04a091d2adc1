package main

import (
	"log"
	"net/http"
	"time"

	"bl-extraction/internal/cache"
	"bl-extraction/internal/config"
	"bl-extraction/internal/database"
	"bl-extraction/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("INFO: Database initialized at %s", cfg.DBPath)

	// Initialize result cache
	cacheManager := cache.NewManager(db.ResultCache, cfg.DisableCache, cfg.CacheTTL)
	defer cacheManager.Close()

	handler := server.New(cfg, db, cacheManager)

	srv := &http.Server{
		Addr:    cfg.Address(),
		Handler: handler,

		// Timeouts
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Handle server startup and graceful shutdown
	shutdownTimeout := 30 * time.Second
	if err := server.HandleSignals(srv, shutdownTimeout); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
