package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

const settingsKey = "escala:settings"

// SettingsRedisCache keeps the settings row in redis. Cache failures are
// logged and treated as misses.
type SettingsRedisCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewSettingsRedisCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *SettingsRedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SettingsRedisCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *SettingsRedisCache) Get(ctx context.Context) (*models.Settings, bool) {
	raw, err := c.rdb.Get(ctx, settingsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("settings cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var s models.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		c.log.Warn("settings cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return &s, true
}

func (c *SettingsRedisCache) Set(ctx context.Context, s *models.Settings) {
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, settingsKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("settings cache write failed", zap.Error(err))
	}
}

func (c *SettingsRedisCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, settingsKey).Err(); err != nil {
		c.log.Warn("settings cache invalidate failed", zap.Error(err))
	}
}
