package repositories

import (
	"context"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
)

// RoomTypeRepository defines the interface for room type data operations
type RoomTypeRepository interface {
	// Create stores a room type and returns its store-assigned ID
	Create(ctx context.Context, roomType *entities.RoomType) (string, error)

	// GetByID retrieves a room type by ID. A missing room type or a
	// malformed ID yields a NOT_FOUND AppError.
	GetByID(ctx context.Context, id string) (*entities.RoomType, error)

	// List retrieves room types, filtered by property when filter.PropertyID is set
	List(ctx context.Context, filter RoomTypeFilter) ([]*entities.RoomType, error)
}

// RoomTypeFilter defines filters for listing room types
type RoomTypeFilter struct {
	PropertyID string
}
