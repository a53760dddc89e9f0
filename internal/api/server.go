package api

import (
	"net/http"
	"time"

	analysisapi "github.com/agrisense/farm-backend/internal/api/analysis"
	"github.com/agrisense/farm-backend/internal/api/docs"
	"github.com/agrisense/farm-backend/internal/api/middleware"
	weatherapi "github.com/agrisense/farm-backend/internal/api/weather"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(analysisHandler *analysisapi.Handler, weatherHandler *weatherapi.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Welcome to the AgriSense farm analysis API"}`))
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	analysisapi.RegisterRoutes(r, analysisHandler)
	weatherapi.RegisterRoutes(r, weatherHandler)

	return r
}
