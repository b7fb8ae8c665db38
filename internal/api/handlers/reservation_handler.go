package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
)

// ReservationService defines the intake operations used by the handler
type ReservationService interface {
	CreateDirect(ctx context.Context, req *entities.CreateReservationRequest) (*entities.ReservationResult, error)
	IngestOTA(ctx context.Context, req *entities.OTAReservationRequest) (*entities.ReservationResult, error)
}

// AvailabilityService defines the availability search used by the handler
type AvailabilityService interface {
	Search(ctx context.Context, search *entities.AvailabilitySearch) (*entities.AvailabilityResult, error)
}

// ReservationHandler handles booking, OTA webhook and availability requests
type ReservationHandler struct {
	reservations ReservationService
	availability AvailabilityService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservations ReservationService, availability AvailabilityService) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		availability: availability,
	}
}

// SearchAvailability handles POST /api/availability
func (h *ReservationHandler) SearchAvailability(w http.ResponseWriter, r *http.Request) {
	var search entities.AvailabilitySearch
	if err := decodeAndValidate(w, r, &search); err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.availability.Search(r.Context(), &search)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// CreateReservation handles POST /api/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.CreateReservationRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.reservations.CreateDirect(r.Context(), &req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// OTAWebhook handles POST /api/ota/webhook
func (h *ReservationHandler) OTAWebhook(w http.ResponseWriter, r *http.Request) {
	var req entities.OTAReservationRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		respondWithAppError(w, err)
		return
	}

	result, err := h.reservations.IngestOTA(r.Context(), &req)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
