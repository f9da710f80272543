package fleetmonitor

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

var server *http.Server

// NewRouter builds the HTTP API for the fleet dashboard frontend.
func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)

	origins := app.Cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", app.handleHealth)
	r.Get("/api/fleet", app.handleFleet)
	r.Get("/api/fleet/positions", app.handlePositions)
	r.Put("/api/fleet/selection", app.handleSelect)
	r.Delete("/api/fleet/selection", app.handleClearSelection)
	return r
}

// StartServer starts the HTTP server in the background.
func StartServer(app *App) {
	addr := fmt.Sprintf(":%d", app.Cfg.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains the server
// and tears down the store so late fetch completions are dropped.
func HandleGracefulShutdown(app *App) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	app.Store.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
