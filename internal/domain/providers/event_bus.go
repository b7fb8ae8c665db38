package providers

import (
	"context"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
)

// EventPublisher publishes reservation events to interested consumers
type EventPublisher interface {
	// Publish publishes an event on a channel
	Publish(ctx context.Context, channel string, event *entities.ReservationEvent) error

	// Close releases the publisher's resources
	Close() error
}

// Event channels
const (
	// EventChannelReservationsCreated carries every reservation.created event
	EventChannelReservationsCreated = "reservations:created"

	// EventChannelPropertyPrefix is the prefix for property-specific channels
	EventChannelPropertyPrefix = "property:"
)

// GetPropertyReservationsChannel returns the channel for one property's reservations
func GetPropertyReservationsChannel(propertyID string) string {
	return EventChannelPropertyPrefix + propertyID + ":reservations"
}
