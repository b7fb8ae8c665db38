package services

import (
	"context"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/repositories"
	"github.com/zatekoja/bookingengine/internal/infrastructure/observability"
)

// AvailabilityService answers availability searches.
// There is no inventory: every room type of the property is reported
// available at its base price, whatever the dates and party size.
type AvailabilityService struct {
	roomTypes repositories.RoomTypeRepository
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(roomTypes repositories.RoomTypeRepository) *AvailabilityService {
	return &AvailabilityService{roomTypes: roomTypes}
}

// Search lists the property's room types as available
func (s *AvailabilityService) Search(ctx context.Context, search *entities.AvailabilitySearch) (*entities.AvailabilityResult, error) {
	ctx, span := observability.StartSpan(ctx, "AvailabilityService.Search")
	defer span.End()

	roomTypes, err := s.roomTypes.List(ctx, repositories.RoomTypeFilter{PropertyID: search.PropertyID})
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	items := make([]entities.AvailabilityResultItem, 0, len(roomTypes))
	for _, rt := range roomTypes {
		items = append(items, entities.AvailabilityResultItem{
			RoomTypeID:   rt.ID,
			Name:         rt.Name,
			Description:  rt.Description,
			MaxGuests:    rt.MaxGuests,
			NightlyPrice: rt.BasePrice,
			Available:    true,
		})
	}

	return &entities.AvailabilityResult{Items: items}, nil
}
