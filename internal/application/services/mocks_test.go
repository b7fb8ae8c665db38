package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/repositories"
)

type mockPropertyRepository struct {
	mock.Mock
}

func (m *mockPropertyRepository) Create(ctx context.Context, property *entities.Property) (string, error) {
	args := m.Called(ctx, property)
	return args.String(0), args.Error(1)
}

func (m *mockPropertyRepository) List(ctx context.Context) ([]*entities.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Property), args.Error(1)
}

type mockRoomTypeRepository struct {
	mock.Mock
}

func (m *mockRoomTypeRepository) Create(ctx context.Context, roomType *entities.RoomType) (string, error) {
	args := m.Called(ctx, roomType)
	return args.String(0), args.Error(1)
}

func (m *mockRoomTypeRepository) GetByID(ctx context.Context, id string) (*entities.RoomType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RoomType), args.Error(1)
}

func (m *mockRoomTypeRepository) List(ctx context.Context, filter repositories.RoomTypeFilter) ([]*entities.RoomType, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RoomType), args.Error(1)
}

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) Create(ctx context.Context, reservation *entities.Reservation) (string, error) {
	args := m.Called(ctx, reservation)
	return args.String(0), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyReservation(ctx context.Context, kind entities.NotificationType, reservation *entities.Reservation) bool {
	args := m.Called(ctx, kind, reservation)
	return args.Bool(0)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) Publish(ctx context.Context, channel string, event *entities.ReservationEvent) error {
	args := m.Called(ctx, channel, event)
	return args.Error(0)
}

func (m *mockEventPublisher) Close() error {
	return m.Called().Error(0)
}

type mockEmailSender struct {
	mock.Mock
}

func (m *mockEmailSender) Send(ctx context.Context, notification *entities.EmailNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type stubStoreInspector struct {
	name        string
	pingErr     error
	collections []string
	listErr     error
}

func (s *stubStoreInspector) DatabaseName() string {
	return s.name
}

func (s *stubStoreInspector) Ping(context.Context) error {
	return s.pingErr
}

func (s *stubStoreInspector) ListCollectionNames(context.Context) ([]string, error) {
	return s.collections, s.listErr
}
