package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/bookingengine/internal/application/services"
)

// DiagnosticsService defines the health operations used by the handler
type DiagnosticsService interface {
	Report(ctx context.Context) *services.DiagnosticsReport
	Schema() []string
}

// SystemHandler serves the liveness, diagnostics and schema endpoints
type SystemHandler struct {
	diagnostics DiagnosticsService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(diagnostics DiagnosticsService) *SystemHandler {
	return &SystemHandler{diagnostics: diagnostics}
}

// Root handles GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Booking Engine Backend Running",
	})
}

// Test handles GET /test and never fails
func (h *SystemHandler) Test(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.diagnostics.Report(r.Context()))
}

// Schema handles GET /schema
func (h *SystemHandler) Schema(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string][]string{
		"collections": h.diagnostics.Schema(),
	})
}
