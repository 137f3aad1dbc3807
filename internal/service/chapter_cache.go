package service

import (
	"context"
	"encoding/json"
	"physics_practice_backend/internal/model"
	"physics_practice_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const chapterCacheKey = "questionbank:chapters"

// ChapterCache 章节统计缓存，Redis 未启用时所有操作为空操作
type ChapterCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewChapterCache(rdb *redis.Client, ttl time.Duration) *ChapterCache {
	return &ChapterCache{Redis: rdb, TTL: ttl}
}

func (c *ChapterCache) Get(ctx context.Context) ([]model.ChapterCount, bool) {
	if c == nil || c.Redis == nil {
		return nil, false
	}

	val, err := c.Redis.Get(ctx, chapterCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("chapter cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var chapters []model.ChapterCount
	if err := json.Unmarshal([]byte(val), &chapters); err != nil {
		logger.Log.Warn("chapter cache corrupted", zap.Error(err))
		return nil, false
	}
	return chapters, true
}

func (c *ChapterCache) Set(ctx context.Context, chapters []model.ChapterCount) {
	if c == nil || c.Redis == nil {
		return
	}

	data, err := json.Marshal(chapters)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, chapterCacheKey, data, c.TTL).Err(); err != nil {
		logger.Log.Warn("chapter cache write failed", zap.Error(err))
	}
}

func (c *ChapterCache) Invalidate(ctx context.Context) {
	if c == nil || c.Redis == nil {
		return
	}
	if err := c.Redis.Del(ctx, chapterCacheKey).Err(); err != nil {
		logger.Log.Warn("chapter cache invalidate failed", zap.Error(err))
	}
}
