package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
)

// PropertyService defines the property operations used by the handler
type PropertyService interface {
	Create(ctx context.Context, property *entities.Property) (string, error)
	List(ctx context.Context) ([]*entities.Property, error)
}

// RoomTypeService defines the room type operations used by the handler
type RoomTypeService interface {
	Create(ctx context.Context, roomType *entities.RoomType) (string, error)
	List(ctx context.Context, propertyID string) ([]*entities.RoomType, error)
}

// CatalogHandler handles property and room type requests
type CatalogHandler struct {
	properties PropertyService
	roomTypes  RoomTypeService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(properties PropertyService, roomTypes RoomTypeService) *CatalogHandler {
	return &CatalogHandler{
		properties: properties,
		roomTypes:  roomTypes,
	}
}

// CreateProperty handles POST /api/properties
func (h *CatalogHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var property entities.Property
	if err := decodeAndValidate(w, r, &property); err != nil {
		respondWithAppError(w, err)
		return
	}
	property.ID = ""

	id, err := h.properties.Create(r.Context(), &property)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"id": id})
}

// ListProperties handles GET /api/properties
func (h *CatalogHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.properties.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if properties == nil {
		properties = []*entities.Property{}
	}

	respondWithJSON(w, http.StatusOK, properties)
}

// CreateRoomType handles POST /api/room-types
func (h *CatalogHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var roomType entities.RoomType
	if err := decodeAndValidate(w, r, &roomType); err != nil {
		respondWithAppError(w, err)
		return
	}
	roomType.ID = ""

	id, err := h.roomTypes.Create(r.Context(), &roomType)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"id": id})
}

// ListRoomTypes handles GET /api/room-types?property_id=
func (h *CatalogHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.roomTypes.List(r.Context(), r.URL.Query().Get("property_id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	if roomTypes == nil {
		roomTypes = []*entities.RoomType{}
	}

	respondWithJSON(w, http.StatusOK, roomTypes)
}
