package entities

import (
	"time"

	"github.com/google/uuid"
)

// ReservationEventType represents the type of reservation event
type ReservationEventType string

const (
	ReservationEventCreated ReservationEventType = "reservation.created"
)

// ReservationEvent is published after a reservation is stored
type ReservationEvent struct {
	ID               string               `json:"id"`
	EventType        ReservationEventType `json:"event_type"`
	ReservationID    string               `json:"reservation_id"`
	PropertyID       string               `json:"property_id"`
	RoomTypeID       string               `json:"room_type_id"`
	Channel          string               `json:"channel"`
	ConfirmationCode string               `json:"confirmation_code"`
	CheckIn          Date                 `json:"check_in"`
	CheckOut         Date                 `json:"check_out"`
	TotalPrice       float64              `json:"total_price"`
	Currency         string               `json:"currency"`
	Timestamp        time.Time            `json:"timestamp"`
}

// NewReservationCreatedEvent builds the event for a stored reservation
func NewReservationCreatedEvent(reservation *Reservation, now time.Time) *ReservationEvent {
	return &ReservationEvent{
		ID:               uuid.New().String(),
		EventType:        ReservationEventCreated,
		ReservationID:    reservation.ID,
		PropertyID:       reservation.PropertyID,
		RoomTypeID:       reservation.RoomTypeID,
		Channel:          reservation.Channel,
		ConfirmationCode: reservation.ConfirmationCode,
		CheckIn:          reservation.CheckIn,
		CheckOut:         reservation.CheckOut,
		TotalPrice:       reservation.TotalPrice,
		Currency:         reservation.Currency,
		Timestamp:        now,
	}
}
