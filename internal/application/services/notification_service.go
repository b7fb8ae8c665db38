package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/providers"
	"github.com/zatekoja/bookingengine/internal/infrastructure/observability"
	"github.com/zatekoja/bookingengine/pkg/config"
)

var reservationEmailTemplates = template.Must(template.New("reservation").Parse(`
{{define "direct_reservation"}}
<h2>New Reservation</h2>
{{template "details" .}}
<p><strong>Channel:</strong> {{.Channel}}</p>
{{end}}
{{define "ota_reservation"}}
<h2>OTA Reservation</h2>
<p><strong>Channel:</strong> {{.Channel}}</p>
{{template "details" .}}
{{end}}
{{define "details"}}
<p><strong>Confirmation:</strong> {{.ConfirmationCode}}</p>
<p><strong>Property:</strong> {{.PropertyID}}</p>
<p><strong>Room Type:</strong> {{.RoomTypeID}}</p>
<p><strong>Dates:</strong> {{.CheckIn}} to {{.CheckOut}} ({{.Nights}} nights)</p>
<p><strong>Guest:</strong> {{.GuestName}} ({{.GuestEmail}})</p>
<p><strong>Total:</strong> {{.Total}} {{.Currency}}</p>
{{end}}
`))

type reservationEmailData struct {
	ConfirmationCode string
	PropertyID       string
	RoomTypeID       string
	CheckIn          string
	CheckOut         string
	Nights           int
	GuestName        string
	GuestEmail       string
	Total            string
	Currency         string
	Channel          string
}

// NotificationService renders and dispatches booking emails.
// Delivery is best effort: failures are logged and reported as false.
type NotificationService struct {
	sender        providers.EmailSender
	operatorEmail string
	metrics       *observability.Metrics
	now           func() time.Time
}

// NewNotificationService creates a new notification service; metrics may be nil
func NewNotificationService(sender providers.EmailSender, cfg config.NotificationConfig, metrics *observability.Metrics) *NotificationService {
	return &NotificationService{
		sender:        sender,
		operatorEmail: cfg.OperatorEmail,
		metrics:       metrics,
		now:           time.Now,
	}
}

// Recipient returns the operator address when configured, else the guest's
func (s *NotificationService) Recipient(guestEmail string) string {
	if s.operatorEmail != "" {
		return s.operatorEmail
	}
	return guestEmail
}

// BuildReservationEmail renders the email for a stored reservation
func (s *NotificationService) BuildReservationEmail(kind entities.NotificationType, reservation *entities.Reservation) (*entities.EmailNotification, error) {
	var subject string
	switch kind {
	case entities.NotificationDirectReservation:
		subject = fmt.Sprintf("New Reservation %s", reservation.ConfirmationCode)
	case entities.NotificationOTAReservation:
		subject = fmt.Sprintf("OTA Reservation %s (%s)", reservation.ConfirmationCode, reservation.Channel)
	default:
		return nil, fmt.Errorf("unknown notification type %q", kind)
	}

	data := reservationEmailData{
		ConfirmationCode: reservation.ConfirmationCode,
		PropertyID:       reservation.PropertyID,
		RoomTypeID:       reservation.RoomTypeID,
		CheckIn:          reservation.CheckIn.String(),
		CheckOut:         reservation.CheckOut.String(),
		Nights:           reservation.Nights(),
		GuestName:        reservation.Guest.FullName(),
		GuestEmail:       reservation.Guest.Email,
		Total:            fmt.Sprintf("%.2f", reservation.TotalPrice),
		Currency:         reservation.Currency,
		Channel:          reservation.Channel,
	}

	var body bytes.Buffer
	if err := reservationEmailTemplates.ExecuteTemplate(&body, string(kind), data); err != nil {
		return nil, fmt.Errorf("render %s email: %w", kind, err)
	}

	return &entities.EmailNotification{
		To:      s.Recipient(reservation.Guest.Email),
		Subject: subject,
		Body:    body.String(),
		Type:    kind,
	}, nil
}

// Send delivers a notification and reports whether it was accepted
func (s *NotificationService) Send(ctx context.Context, notification *entities.EmailNotification) bool {
	logger := observability.LoggerFromContext(ctx)

	if err := s.sender.Send(ctx, notification); err != nil {
		logger.Error().
			Err(err).
			Str("to", notification.To).
			Str("subject", notification.Subject).
			Msg("Email error")
		observability.RecordNotificationFailed(ctx, s.metrics, string(notification.Type))
		return false
	}

	sentAt := s.now().UTC()
	notification.SentAt = &sentAt
	logger.Debug().Str("to", notification.To).Str("subject", notification.Subject).Msg("Email sent")
	return true
}

// NotifyReservation renders and sends the email for a stored reservation
func (s *NotificationService) NotifyReservation(ctx context.Context, kind entities.NotificationType, reservation *entities.Reservation) bool {
	notification, err := s.BuildReservationEmail(kind, reservation)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("Failed to build reservation email")
		observability.RecordNotificationFailed(ctx, s.metrics, string(kind))
		return false
	}
	return s.Send(ctx, notification)
}
