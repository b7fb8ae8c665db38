package entities

import (
	"time"
)

// ReservationStatus represents the state of a reservation
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Booking channels
const (
	ChannelDirect     = "direct"
	ChannelBookingCom = "booking.com"
)

// Confirmation code prefixes per intake path
const (
	ConfirmationPrefixDirect = "RES"
	ConfirmationPrefixOTA    = "OTA"
)

// DefaultCurrency is used when no currency is supplied
const DefaultCurrency = "USD"

// ReservationGuest is the primary guest embedded in a reservation
type ReservationGuest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

// FullName returns first and last name joined by a space
func (g ReservationGuest) FullName() string {
	return g.FirstName + " " + g.LastName
}

// Reservation represents a booked stay
type Reservation struct {
	ID               string            `json:"id,omitempty"`
	PropertyID       string            `json:"property_id"`
	RoomTypeID       string            `json:"room_type_id"`
	CheckIn          Date              `json:"check_in"`
	CheckOut         Date              `json:"check_out"`
	Guests           int               `json:"guests"`
	TotalPrice       float64           `json:"total_price"`
	Currency         string            `json:"currency"`
	Channel          string            `json:"channel"`
	Status           ReservationStatus `json:"status"`
	Guest            ReservationGuest  `json:"guest"`
	SpecialRequests  string            `json:"special_requests,omitempty"`
	ConfirmationCode string            `json:"confirmation_code,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// Nights returns the whole number of nights between check-in and check-out
func (r *Reservation) Nights() int {
	return r.CheckIn.DaysUntil(r.CheckOut)
}

// CreateReservationRequest is a direct booking request
type CreateReservationRequest struct {
	PropertyID      string           `json:"property_id" validate:"required"`
	RoomTypeID      string           `json:"room_type_id" validate:"required"`
	CheckIn         Date             `json:"check_in"`
	CheckOut        Date             `json:"check_out"`
	Guests          int              `json:"guests" validate:"min=1"`
	Guest           ReservationGuest `json:"guest"`
	SpecialRequests string           `json:"special_requests,omitempty"`
}

// StayDates returns the requested check-in and check-out
func (r *CreateReservationRequest) StayDates() (Date, Date) {
	return r.CheckIn, r.CheckOut
}

// OTAReservationRequest is a reservation pushed by an external channel
type OTAReservationRequest struct {
	PropertyID       string           `json:"property_id" validate:"required"`
	RoomTypeID       string           `json:"room_type_id" validate:"required"`
	CheckIn          Date             `json:"check_in"`
	CheckOut         Date             `json:"check_out"`
	Guests           int              `json:"guests" validate:"min=1"`
	Guest            ReservationGuest `json:"guest"`
	TotalPrice       *float64         `json:"total_price,omitempty" validate:"omitempty,gte=0"`
	Currency         string           `json:"currency,omitempty" validate:"omitempty,len=3"`
	Channel          string           `json:"channel,omitempty"`
	ConfirmationCode string           `json:"confirmation_code,omitempty"`
}

// StayDates returns the requested check-in and check-out
func (r *OTAReservationRequest) StayDates() (Date, Date) {
	return r.CheckIn, r.CheckOut
}

// ReservationResult is returned by both intake paths
type ReservationResult struct {
	ID               string `json:"id"`
	ConfirmationCode string `json:"confirmation_code"`
}
