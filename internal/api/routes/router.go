package routes

import (
	"net/http"

	"github.com/zatekoja/bookingengine/internal/api/handlers"
	"github.com/zatekoja/bookingengine/internal/api/middleware"
	"github.com/zatekoja/bookingengine/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	systemHandler      *handlers.SystemHandler
	catalogHandler     *handlers.CatalogHandler
	reservationHandler *handlers.ReservationHandler

	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	systemHandler *handlers.SystemHandler,
	catalogHandler *handlers.CatalogHandler,
	reservationHandler *handlers.ReservationHandler,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		systemHandler:      systemHandler,
		catalogHandler:     catalogHandler,
		reservationHandler: reservationHandler,
		allowedOrigins:     allowedOrigins,
		metrics:            metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Diagnostics
	r.mux.HandleFunc("GET /{$}", r.systemHandler.Root)
	r.mux.HandleFunc("GET /test", r.systemHandler.Test)
	r.mux.HandleFunc("GET /schema", r.systemHandler.Schema)

	// Catalog
	r.mux.HandleFunc("POST /api/properties", r.catalogHandler.CreateProperty)
	r.mux.HandleFunc("GET /api/properties", r.catalogHandler.ListProperties)
	r.mux.HandleFunc("POST /api/room-types", r.catalogHandler.CreateRoomType)
	r.mux.HandleFunc("GET /api/room-types", r.catalogHandler.ListRoomTypes)

	// Availability and booking
	r.mux.HandleFunc("POST /api/availability", r.reservationHandler.SearchAvailability)
	r.mux.HandleFunc("POST /api/reservations", r.reservationHandler.CreateReservation)
	r.mux.HandleFunc("POST /api/ota/webhook", r.reservationHandler.OTAWebhook)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS is outermost so preflight requests never reach the mux.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
