package repositories

import (
	"context"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
)

// PropertyRepository defines the interface for property data operations
type PropertyRepository interface {
	// Create stores a property and returns its store-assigned ID
	Create(ctx context.Context, property *entities.Property) (string, error)

	// List retrieves all properties
	List(ctx context.Context) ([]*entities.Property, error)
}
