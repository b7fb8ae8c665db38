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

type propertyDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Address      string             `bson:"address"`
	City         string             `bson:"city"`
	Country      string             `bson:"country"`
	Timezone     string             `bson:"timezone"`
	ContactEmail string             `bson:"contact_email,omitempty"`
}

func newPropertyDocument(p *entities.Property) propertyDocument {
	return propertyDocument{
		Name:         p.Name,
		Address:      p.Address,
		City:         p.City,
		Country:      p.Country,
		Timezone:     p.Timezone,
		ContactEmail: p.ContactEmail,
	}
}

func (d propertyDocument) toEntity() *entities.Property {
	return &entities.Property{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Address:      d.Address,
		City:         d.City,
		Country:      d.Country,
		Timezone:     d.Timezone,
		ContactEmail: d.ContactEmail,
	}
}

// PropertyAdapter implements PropertyRepository on the document store
type PropertyAdapter struct {
	store documentStore
}

// NewPropertyAdapter creates a new property adapter
func NewPropertyAdapter(client *mongoclient.Client) repositories.PropertyRepository {
	return newPropertyAdapter(client)
}

func newPropertyAdapter(store documentStore) *PropertyAdapter {
	return &PropertyAdapter{store: store}
}

// Create inserts a property and returns its ID
func (a *PropertyAdapter) Create(ctx context.Context, property *entities.Property) (string, error) {
	if property == nil {
		return "", apperrors.NewInternalError("property is nil", fmt.Errorf("property is nil"))
	}

	id, err := a.store.InsertDocument(ctx, mongoclient.CollectionProperty, newPropertyDocument(property))
	if err != nil {
		return "", apperrors.NewInternalError("failed to create property", err)
	}
	property.ID = id
	return id, nil
}

// List retrieves all properties
func (a *PropertyAdapter) List(ctx context.Context) ([]*entities.Property, error) {
	var docs []propertyDocument
	if err := a.store.FindDocuments(ctx, mongoclient.CollectionProperty, bson.D{}, &docs); err != nil {
		return nil, apperrors.NewInternalError("failed to list properties", err)
	}

	properties := make([]*entities.Property, 0, len(docs))
	for _, doc := range docs {
		properties = append(properties, doc.toEntity())
	}
	return properties, nil
}
