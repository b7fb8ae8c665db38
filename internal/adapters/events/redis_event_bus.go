package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/zatekoja/bookingengine/internal/domain/entities"
	"github.com/zatekoja/bookingengine/internal/domain/providers"
	redisclient "github.com/zatekoja/bookingengine/internal/infrastructure/clients/redis"
)

// RedisEventBus implements the EventPublisher interface using Redis Pub/Sub
type RedisEventBus struct {
	client *redis.Client
}

// NewRedisEventBus creates a new Redis-based event publisher
func NewRedisEventBus(client *redisclient.Client) providers.EventPublisher {
	return &RedisEventBus{client: client.Client()}
}

// Publish publishes an event to all subscribers of channel
func (b *RedisEventBus) Publish(ctx context.Context, channel string, event *entities.ReservationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	receivers, err := b.client.Publish(ctx, channel, data).Result()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	log.Debug().
		Str("channel", channel).
		Str("event_id", event.ID).
		Int64("receivers", receivers).
		Msg("Published reservation event")
	return nil
}

// Close is a no-op; the Redis client is owned by the caller
func (b *RedisEventBus) Close() error {
	return nil
}

// NoopEventBus discards events. It is used when Redis is disabled.
type NoopEventBus struct{}

// NewNoopEventBus creates a publisher that drops every event
func NewNoopEventBus() providers.EventPublisher {
	return NoopEventBus{}
}

// Publish drops the event
func (NoopEventBus) Publish(context.Context, string, *entities.ReservationEvent) error {
	return nil
}

// Close does nothing
func (NoopEventBus) Close() error {
	return nil
}
