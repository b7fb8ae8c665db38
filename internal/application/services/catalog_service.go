package services

import (
	"context"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/repositories"
)

// PropertyService handles business logic for properties
type PropertyService struct {
	repo repositories.PropertyRepository
}

// NewPropertyService creates a new property service
func NewPropertyService(repo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

// Create stores a property, defaulting its timezone, and returns its ID
func (s *PropertyService) Create(ctx context.Context, property *entities.Property) (string, error) {
	property.ApplyDefaults()
	return s.repo.Create(ctx, property)
}

// List retrieves all properties
func (s *PropertyService) List(ctx context.Context) ([]*entities.Property, error) {
	return s.repo.List(ctx)
}

// RoomTypeService handles business logic for room types
type RoomTypeService struct {
	repo repositories.RoomTypeRepository
}

// NewRoomTypeService creates a new room type service
func NewRoomTypeService(repo repositories.RoomTypeRepository) *RoomTypeService {
	return &RoomTypeService{repo: repo}
}

// Create stores a room type and returns its ID. The property is not checked.
func (s *RoomTypeService) Create(ctx context.Context, roomType *entities.RoomType) (string, error) {
	return s.repo.Create(ctx, roomType)
}

// List retrieves room types, all of them when propertyID is empty
func (s *RoomTypeService) List(ctx context.Context, propertyID string) ([]*entities.RoomType, error) {
	return s.repo.List(ctx, repositories.RoomTypeFilter{PropertyID: propertyID})
}
