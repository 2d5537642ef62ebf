package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-event-ticketing/internal/model"

	"github.com/redis/go-redis/v9"
)

const defaultCatalogTTL = 5 * time.Minute

// CatalogCache keeps the read-mostly catalog (event detail plus ticket
// tiers) in Redis so browse traffic stays off the database. Writes to an
// event or its tickets invalidate the entry.
type CatalogCache interface {
	GetEvent(ctx context.Context, eventID int) (*model.Event, error)
	SetEvent(ctx context.Context, event *model.Event) error
	InvalidateEvent(ctx context.Context, eventID int) error
}

type RedisCatalogCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) CatalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}
	return &RedisCatalogCacheImpl{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisCatalogCacheImpl) getEventKey(eventID int) string {
	return fmt.Sprintf("event:%d:detail", eventID)
}

// GetEvent returns nil, nil on a cache miss.
func (c *RedisCatalogCacheImpl) GetEvent(ctx context.Context, eventID int) (*model.Event, error) {
	val, err := c.client.Get(ctx, c.getEventKey(eventID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err := json.Unmarshal([]byte(val), &event); err != nil {
		return nil, fmt.Errorf("unmarshal cached event: %w", err)
	}

	return &event, nil
}

func (c *RedisCatalogCacheImpl) SetEvent(ctx context.Context, event *model.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return c.client.Set(ctx, c.getEventKey(event.ID), payload, c.ttl).Err()
}

func (c *RedisCatalogCacheImpl) InvalidateEvent(ctx context.Context, eventID int) error {
	return c.client.Del(ctx, c.getEventKey(eventID)).Err()
}
