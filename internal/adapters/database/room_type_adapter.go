package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/repositories"
	mongoclient "github.com/zatekoja/bookingengine/internal/infrastructure/clients/mongo"
	apperrors "github.com/zatekoja/bookingengine/pkg/errors"
)

type roomTypeDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PropertyID  string             `bson:"property_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	MaxGuests   int                `bson:"max_guests"`
	BasePrice   float64            `bson:"base_price"`
}

func newRoomTypeDocument(rt *entities.RoomType) roomTypeDocument {
	return roomTypeDocument{
		PropertyID:  rt.PropertyID,
		Name:        rt.Name,
		Description: rt.Description,
		MaxGuests:   rt.MaxGuests,
		BasePrice:   rt.BasePrice,
	}
}

func (d roomTypeDocument) toEntity() *entities.RoomType {
	return &entities.RoomType{
		ID:          d.ID.Hex(),
		PropertyID:  d.PropertyID,
		Name:        d.Name,
		Description: d.Description,
		MaxGuests:   d.MaxGuests,
		BasePrice:   d.BasePrice,
	}
}

// RoomTypeAdapter implements RoomTypeRepository on the document store
type RoomTypeAdapter struct {
	store documentStore
}

// NewRoomTypeAdapter creates a new room type adapter
func NewRoomTypeAdapter(client *mongoclient.Client) repositories.RoomTypeRepository {
	return newRoomTypeAdapter(client)
}

func newRoomTypeAdapter(store documentStore) *RoomTypeAdapter {
	return &RoomTypeAdapter{store: store}
}

// Create inserts a room type and returns its ID
func (a *RoomTypeAdapter) Create(ctx context.Context, roomType *entities.RoomType) (string, error) {
	if roomType == nil {
		return "", apperrors.NewInternalError("room type is nil", fmt.Errorf("room type is nil"))
	}

	id, err := a.store.InsertDocument(ctx, mongoclient.CollectionRoomType, newRoomTypeDocument(roomType))
	if err != nil {
		return "", apperrors.NewInternalError("failed to create room type", err)
	}
	roomType.ID = id
	return id, nil
}

// GetByID retrieves a room type by ID
func (a *RoomTypeAdapter) GetByID(ctx context.Context, id string) (*entities.RoomType, error) {
	var doc roomTypeDocument
	if err := a.store.FindDocumentByID(ctx, mongoclient.CollectionRoomType, id, &doc); err != nil {
		return nil, notFoundOrInternal(err, "Room type not found", "failed to get room type")
	}
	return doc.toEntity(), nil
}

// List retrieves room types, optionally restricted to one property
func (a *RoomTypeAdapter) List(ctx context.Context, filter repositories.RoomTypeFilter) ([]*entities.RoomType, error) {
	query := bson.D{}
	if filter.PropertyID != "" {
		query = bson.D{{Key: "property_id", Value: filter.PropertyID}}
	}

	var docs []roomTypeDocument
	if err := a.store.FindDocuments(ctx, mongoclient.CollectionRoomType, query, &docs); err != nil {
		return nil, apperrors.NewInternalError("failed to list room types", err)
	}

	roomTypes := make([]*entities.RoomType, 0, len(docs))
	for _, doc := range docs {
		roomTypes = append(roomTypes, doc.toEntity())
	}
	return roomTypes, nil
}
