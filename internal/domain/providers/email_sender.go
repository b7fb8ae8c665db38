package providers

import (
	"context"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
)

// EmailSender delivers an email over some transport
type EmailSender interface {
	Send(ctx context.Context, notification *entities.EmailNotification) error
}
