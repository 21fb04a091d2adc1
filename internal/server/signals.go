package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// SignalHandler manages graceful shutdown of the HTTP server
type SignalHandler struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

// NewSignalHandler creates a new signal handler
func NewSignalHandler(server *http.Server, shutdownTimeout time.Duration) *SignalHandler {
	return &SignalHandler{
		server:          server,
		shutdownTimeout: shutdownTimeout,
	}
}

// WaitForShutdown blocks until SIGINT or SIGTERM arrives, then drains the
// server within the shutdown timeout. SIGKILL cannot be caught; in-flight
// requests are lost on a hard kill.
func (sh *SignalHandler) WaitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("INFO: Received signal %v, initiating graceful shutdown", sig)

	ctx, cancel := context.WithTimeout(context.Background(), sh.shutdownTimeout)
	defer cancel()

	if err := sh.server.Shutdown(ctx); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	} else {
		log.Printf("INFO: Server gracefully shut down")
	}
}

// HandleSignals starts the server and blocks until it has shut down
func HandleSignals(server *http.Server, shutdownTimeout time.Duration) error {
	go func() {
		log.Printf("INFO: Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	NewSignalHandler(server, shutdownTimeout).WaitForShutdown()
	return nil
}
