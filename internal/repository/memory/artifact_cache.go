package memory

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// ArtifactCache stores serialized generation results keyed by the
// normalized request tuple, so identical requests skip the retrieval and
// generation pipeline.
type ArtifactCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// ArtifactCacheKey builds the cache key from the normalized request tuple.
// Parts must already be normalized; empty parts are kept so that absent
// fields still shift the key shape.
func ArtifactCacheKey(contentType string, parts ...string) string {
	return contentType + "|" + strings.Join(parts, "|")
}

type InMemoryArtifactCache struct {
	cache *cache.Cache
}

func NewInMemoryArtifactCache(ttl time.Duration) *InMemoryArtifactCache {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	return &InMemoryArtifactCache{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *InMemoryArtifactCache) Get(_ context.Context, key string) ([]byte, bool) {
	if x, found := r.cache.Get(key); found {
		return x.([]byte), true
	}
	return nil, false
}

func (r *InMemoryArtifactCache) Set(_ context.Context, key string, value []byte) {
	r.cache.Set(key, value, cache.DefaultExpiration)
}
