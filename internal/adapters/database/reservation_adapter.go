package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/repositories"
	mongoclient "github.com/zatekoja/bookingengine/internal/infrastructure/clients/mongo"
	apperrors "github.com/zatekoja/bookingengine/pkg/errors"
)

type reservationGuestDocument struct {
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone,omitempty"`
}

type reservationDocument struct {
	ID               primitive.ObjectID       `bson:"_id,omitempty"`
	PropertyID       string                   `bson:"property_id"`
	RoomTypeID       string                   `bson:"room_type_id"`
	CheckIn          string                   `bson:"check_in"`
	CheckOut         string                   `bson:"check_out"`
	Guests           int                      `bson:"guests"`
	TotalPrice       float64                  `bson:"total_price"`
	Currency         string                   `bson:"currency"`
	Channel          string                   `bson:"channel"`
	Status           string                   `bson:"status"`
	Guest            reservationGuestDocument `bson:"guest"`
	SpecialRequests  string                   `bson:"special_requests,omitempty"`
	ConfirmationCode string                   `bson:"confirmation_code,omitempty"`
	CreatedAt        time.Time                `bson:"created_at"`
}

func newReservationDocument(r *entities.Reservation) reservationDocument {
	return reservationDocument{
		PropertyID: r.PropertyID,
		RoomTypeID: r.RoomTypeID,
		CheckIn:    r.CheckIn.String(),
		CheckOut:   r.CheckOut.String(),
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
		Currency:   r.Currency,
		Channel:    r.Channel,
		Status:     string(r.Status),
		Guest: reservationGuestDocument{
			FirstName: r.Guest.FirstName,
			LastName:  r.Guest.LastName,
			Email:     r.Guest.Email,
			Phone:     r.Guest.Phone,
		},
		SpecialRequests:  r.SpecialRequests,
		ConfirmationCode: r.ConfirmationCode,
		CreatedAt:        r.CreatedAt.UTC(),
	}
}

// ReservationAdapter implements ReservationRepository on the document store
type ReservationAdapter struct {
	store documentStore
}

// NewReservationAdapter creates a new reservation adapter
func NewReservationAdapter(client *mongoclient.Client) repositories.ReservationRepository {
	return newReservationAdapter(client)
}

func newReservationAdapter(store documentStore) *ReservationAdapter {
	return &ReservationAdapter{store: store}
}

// Create inserts a reservation and returns its ID
func (a *ReservationAdapter) Create(ctx context.Context, reservation *entities.Reservation) (string, error) {
	if reservation == nil {
		return "", apperrors.NewInternalError("reservation is nil", fmt.Errorf("reservation is nil"))
	}

	id, err := a.store.InsertDocument(ctx, mongoclient.CollectionReservation, newReservationDocument(reservation))
	if err != nil {
		return "", apperrors.NewInternalError("failed to create reservation", err)
	}
	reservation.ID = id
	return id, nil
}
