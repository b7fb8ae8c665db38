package repositories

import (
	"context"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
)

// ReservationRepository defines the interface for reservation data operations
type ReservationRepository interface {
	// Create stores a reservation and returns its store-assigned ID
	Create(ctx context.Context, reservation *entities.Reservation) (string, error)
}
