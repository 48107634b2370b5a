// README: Redis read-through cache in front of the place provider.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"rumbo/internal/types"
)

// CachedProvider wraps a Provider with a short-lived redis cache. The origin
// is rounded to ~100 m so nearby requests share an entry. Cache failures are
// strictly best-effort: any redis error falls through to the upstream call.
type CachedProvider struct {
	upstream Provider
	redis    *redis.Client
	ttl      time.Duration
	log      *zap.Logger
}

func NewCachedProvider(upstream Provider, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachedProvider {
	return &CachedProvider{upstream: upstream, redis: rdb, ttl: ttl, log: log}
}

func (c *CachedProvider) FetchPlaces(ctx context.Context, origin types.Point, radiusKm float64, limit int, category Category) ([]Place, error) {
	key := cacheKey(origin, radiusKm, category)

	if raw, err := c.redis.Get(ctx, key).Result(); err == nil {
		var cached []Place
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			if limit > 0 && len(cached) > limit {
				cached = cached[:limit]
			}
			return cached, nil
		}
	} else if err != redis.Nil {
		c.log.Debug("candidate cache read failed", zap.Error(err))
	}

	result, err := c.upstream.FetchPlaces(ctx, origin, radiusKm, limit, category)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(result); err == nil {
		if err := c.redis.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			c.log.Debug("candidate cache write failed", zap.Error(err))
		}
	}
	return result, nil
}

func cacheKey(origin types.Point, radiusKm float64, category Category) string {
	// 3 decimal places ≈ 110 m grid.
	return fmt.Sprintf("discover:%s:%.3f,%.3f:r%.1f", category, origin.Lat, origin.Lng, radiusKm)
}
