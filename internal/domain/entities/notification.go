package entities

import "time"

// NotificationType represents the notification purpose
type NotificationType string

const (
	NotificationDirectReservation NotificationType = "direct_reservation"
	NotificationOTAReservation    NotificationType = "ota_reservation"
)

// EmailNotification is an outbound HTML email
type EmailNotification struct {
	To      string           `json:"to"`
	Subject string           `json:"subject"`
	Body    string           `json:"body"`
	Type    NotificationType `json:"type,omitempty"`
	SentAt  *time.Time       `json:"sent_at,omitempty"`
}
