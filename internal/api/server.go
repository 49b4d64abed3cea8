package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
)

// Service information
const (
	ServiceName    = "briefs-processor"
	ServiceVersion = "1.0.0"
)

// StartServer initializes and starts the HTTP server
func StartServer(port int, server *Server, corsOrigins []string) error {
	mux := http.NewServeMux()

	// Register service discovery endpoints
	mux.HandleFunc("/health", server.HealthCheckHandler)
	mux.HandleFunc("/service-info", server.ServiceInfoHandler)

	// Register API endpoints
	mux.HandleFunc("/api/process", server.ProcessHandler)
	mux.HandleFunc("/api/export", server.ExportHandler)
	mux.HandleFunc("/api/session", server.SessionHandler)

	// The expected caller is a browser upload page on another origin
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      corsWrapper.Handler(mux),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 300 * time.Second, // Allow for slow workflow runs
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("starting briefs-processor API server", "port", port)
	return httpServer.ListenAndServe()
}

// HealthCheckHandler returns the health status of the service
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// ServiceInfoHandler returns information about this service for service
// discovery
func (s *Server) ServiceInfoHandler(w http.ResponseWriter, r *http.Request) {
	hostname, _ := os.Hostname()

	info := map[string]interface{}{
		"service":  ServiceName,
		"version":  ServiceVersion,
		"hostname": hostname,
		"endpoints": []string{
			"/api/process",
			"/api/export",
			"/api/session",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jsonResponse, _ := json.Marshal(info)
	w.Write(jsonResponse)
}
