package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/bookingengine/internal/application/services"
	"github.com/zatekoja/bookingengine/internal/domain/entities"
)

type mockPropertyService struct {
	mock.Mock
}

func (m *mockPropertyService) Create(ctx context.Context, property *entities.Property) (string, error) {
	args := m.Called(ctx, property)
	return args.String(0), args.Error(1)
}

func (m *mockPropertyService) List(ctx context.Context) ([]*entities.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Property), args.Error(1)
}

type mockRoomTypeService struct {
	mock.Mock
}

func (m *mockRoomTypeService) Create(ctx context.Context, roomType *entities.RoomType) (string, error) {
	args := m.Called(ctx, roomType)
	return args.String(0), args.Error(1)
}

func (m *mockRoomTypeService) List(ctx context.Context, propertyID string) ([]*entities.RoomType, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RoomType), args.Error(1)
}

type mockReservationService struct {
	mock.Mock
}

func (m *mockReservationService) CreateDirect(ctx context.Context, req *entities.CreateReservationRequest) (*entities.ReservationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ReservationResult), args.Error(1)
}

func (m *mockReservationService) IngestOTA(ctx context.Context, req *entities.OTAReservationRequest) (*entities.ReservationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ReservationResult), args.Error(1)
}

type mockAvailabilityService struct {
	mock.Mock
}

func (m *mockAvailabilityService) Search(ctx context.Context, search *entities.AvailabilitySearch) (*entities.AvailabilityResult, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AvailabilityResult), args.Error(1)
}

type stubDiagnosticsService struct {
	report *services.DiagnosticsReport
}

func (s *stubDiagnosticsService) Report(context.Context) *services.DiagnosticsReport {
	return s.report
}

func (s *stubDiagnosticsService) Schema() []string {
	return []string{"property", "roomtype", "reservation"}
}
