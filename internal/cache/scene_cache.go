package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/scene-backend/internal/models"
)

// SceneCache is a read-through cache for scene-by-id lookups. It is strictly
// best-effort: a nil cache, a nil client, or any Redis failure degrades to
// the database without surfacing errors.
type SceneCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSceneCache creates a SceneCache. Passing a nil client disables caching.
func NewSceneCache(rdb *redis.Client, ttl time.Duration) *SceneCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &SceneCache{rdb: rdb, ttl: ttl}
}

func sceneKey(id uint) string {
	return fmt.Sprintf("scene:%d", id)
}

// Get returns the cached response for a scene id, if present.
func (c *SceneCache) Get(ctx context.Context, id uint) (*models.SceneResponse, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, sceneKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var resp models.SceneResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

// Set stores a scene response under its id.
func (c *SceneCache) Set(ctx context.Context, resp *models.SceneResponse) {
	if c == nil || c.rdb == nil || resp == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, sceneKey(resp.ID), data, c.ttl)
}

// Invalidate drops the cached entry for a scene id.
func (c *SceneCache) Invalidate(ctx context.Context, id uint) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, sceneKey(id))
}
