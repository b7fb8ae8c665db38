package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/providers"
	"github.com/zatekoja/bookingengine/internal/domain/repositories"
	"github.com/zatekoja/bookingengine/internal/infrastructure/observability"
)

const (
	// roomTypeByIDTTL is the cache lifetime of a single room type, in seconds
	roomTypeByIDTTL = 300

	roomTypeCacheName = "roomtype"
)

func roomTypeCacheKey(id string) string {
	return fmt.Sprintf("roomtype:%s", id)
}

// CachedRoomTypeAdapter wraps a RoomTypeRepository with a read-through cache on GetByID
type CachedRoomTypeAdapter struct {
	adapter repositories.RoomTypeRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedRoomTypeAdapter creates a new cached room type adapter; metrics may be nil
func NewCachedRoomTypeAdapter(adapter repositories.RoomTypeRepository, cache providers.CacheProvider, metrics *observability.Metrics) repositories.RoomTypeRepository {
	return &CachedRoomTypeAdapter{
		adapter: adapter,
		cache:   cache,
		metrics: metrics,
	}
}

// Create stores the room type; nothing is cached until it is read
func (a *CachedRoomTypeAdapter) Create(ctx context.Context, roomType *entities.RoomType) (string, error) {
	return a.adapter.Create(ctx, roomType)
}

// GetByID retrieves a room type by ID with caching
func (a *CachedRoomTypeAdapter) GetByID(ctx context.Context, id string) (*entities.RoomType, error) {
	cacheKey := roomTypeCacheKey(id)

	cached, err := a.cache.Get(ctx, cacheKey)
	switch {
	case err == nil:
		var roomType entities.RoomType
		if err := json.Unmarshal(cached, &roomType); err == nil {
			observability.RecordCacheHit(ctx, a.metrics, roomTypeCacheName)
			return &roomType, nil
		}
		log.Warn().Err(err).Str("room_type_id", id).Msg("Failed to unmarshal cached room type")
	case !errors.Is(err, providers.ErrCacheMiss):
		log.Warn().Err(err).Str("room_type_id", id).Msg("Room type cache read failed")
	}

	observability.RecordCacheMiss(ctx, a.metrics, roomTypeCacheName)

	roomType, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(roomType); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, roomTypeByIDTTL); err != nil {
			log.Warn().Err(err).Str("room_type_id", id).Msg("Failed to cache room type")
		}
	}

	return roomType, nil
}

// List is not cached so newly created room types show up immediately
func (a *CachedRoomTypeAdapter) List(ctx context.Context, filter repositories.RoomTypeFilter) ([]*entities.RoomType, error) {
	return a.adapter.List(ctx, filter)
}
