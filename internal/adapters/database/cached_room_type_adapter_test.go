package database

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/providers"
	"github.com/zatekoja/bookingengine/internal/domain/repositories"
	apperrors "github.com/zatekoja/bookingengine/pkg/errors"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	args := m.Called(ctx, key, value, expirationSeconds)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
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
	return args.Get(0).([]*entities.RoomType), args.Error(1)
}

func TestCachedRoomTypeAdapter_GetByID(t *testing.T) {
	ctx := context.Background()
	roomType := &entities.RoomType{ID: "R", PropertyID: "P", Name: "Deluxe", MaxGuests: 2, BasePrice: 100}
	encoded, err := json.Marshal(roomType)
	require.NoError(t, err)

	t.Run("cache hit skips the store", func(t *testing.T) {
		repo := new(mockRoomTypeRepository)
		cache := new(mockCache)
		cache.On("Get", ctx, "roomtype:R").Return(encoded, nil)

		adapter := NewCachedRoomTypeAdapter(repo, cache, nil)
		got, err := adapter.GetByID(ctx, "R")

		require.NoError(t, err)
		assert.Equal(t, roomType, got)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads through and fills the cache", func(t *testing.T) {
		repo := new(mockRoomTypeRepository)
		cache := new(mockCache)
		cache.On("Get", ctx, "roomtype:R").Return(nil, providers.ErrCacheMiss)
		repo.On("GetByID", ctx, "R").Return(roomType, nil)
		cache.On("Set", ctx, "roomtype:R", encoded, roomTypeByIDTTL).Return(nil)

		adapter := NewCachedRoomTypeAdapter(repo, cache, nil)
		got, err := adapter.GetByID(ctx, "R")

		require.NoError(t, err)
		assert.Equal(t, roomType, got)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure falls back to the store", func(t *testing.T) {
		repo := new(mockRoomTypeRepository)
		cache := new(mockCache)
		cache.On("Get", ctx, "roomtype:R").Return(nil, errors.New("redis down"))
		repo.On("GetByID", ctx, "R").Return(roomType, nil)
		cache.On("Set", ctx, "roomtype:R", mock.Anything, roomTypeByIDTTL).Return(errors.New("redis down"))

		adapter := NewCachedRoomTypeAdapter(repo, cache, nil)
		got, err := adapter.GetByID(ctx, "R")

		require.NoError(t, err)
		assert.Equal(t, roomType, got)
	})

	t.Run("not found is not cached", func(t *testing.T) {
		repo := new(mockRoomTypeRepository)
		cache := new(mockCache)
		cache.On("Get", ctx, "roomtype:missing").Return(nil, providers.ErrCacheMiss)
		repo.On("GetByID", ctx, "missing").Return(nil, apperrors.NewNotFoundError("Room type not found"))

		adapter := NewCachedRoomTypeAdapter(repo, cache, nil)
		_, err := adapter.GetByID(ctx, "missing")

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCachedRoomTypeAdapter_ListBypassesCache(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRoomTypeRepository)
	cache := new(mockCache)
	filter := repositories.RoomTypeFilter{PropertyID: "P"}
	repo.On("List", ctx, filter).Return([]*entities.RoomType{{ID: "R"}}, nil)

	adapter := NewCachedRoomTypeAdapter(repo, cache, nil)
	roomTypes, err := adapter.List(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, roomTypes, 1)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
