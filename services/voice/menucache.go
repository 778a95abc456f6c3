// File: services/voice/menucache.go
package voice

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"pizzavoice/models"
)

const menuCachePrefix = "menu:"

// MenuCache keeps a store's menu in Redis so repeated call turns do not hit
// Mongo. All operations are best-effort: a cache failure reads through to
// the repository.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, ttl: ttl}
}

func (c *MenuCache) Get(ctx context.Context, storeID string) ([]models.MenuItem, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, menuCachePrefix+storeID).Result()
	if err != nil {
		return nil, false
	}
	var items []models.MenuItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *MenuCache) Set(ctx context.Context, storeID string, items []models.MenuItem) {
	if c == nil || c.client == nil {
		return
	}
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.client.Set(ctx, menuCachePrefix+storeID, b, c.ttl)
}

func (c *MenuCache) Invalidate(ctx context.Context, storeID string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, menuCachePrefix+storeID)
}
