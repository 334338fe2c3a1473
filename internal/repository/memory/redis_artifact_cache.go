package memory

import (
	"context"
	"errors"
	"time"

	"ai-lessonplanner-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisArtifactCache shares generated artifacts across instances. Cache
// failures degrade to a miss; they never fail the request.
type RedisArtifactCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewRedisArtifactCache(addr, password string, db int, ttl time.Duration, log logger.ILogger) *RedisArtifactCache {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisArtifactCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func (r *RedisArtifactCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, "artifact:"+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("cache", "redis get failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}
	return val, true
}

func (r *RedisArtifactCache) Set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, "artifact:"+key, value, r.ttl).Err(); err != nil {
		r.logger.Warn("cache", "redis set failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (r *RedisArtifactCache) Close() error {
	return r.client.Close()
}
