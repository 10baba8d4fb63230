// File: services/travel/cache.go
package travel

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	destCachePrefix = "travel:dest:"
	destCacheTTL    = 24 * time.Hour
)

// cachedDestination looks up a previously resolved destination id. A cache
// miss or any Redis error just falls through to a live resolve.
func (c *Client) cachedDestination(ctx context.Context, cityQuery string) (resolvedDestination, bool) {
	if c.Cache == nil {
		return resolvedDestination{}, false
	}
	key := destCachePrefix + strings.ToLower(strings.TrimSpace(cityQuery))
	data, err := c.Cache.Get(ctx, key).Result()
	if err == redis.Nil {
		return resolvedDestination{}, false
	}
	if err != nil {
		c.logger().Debug("Destination cache read failed", zap.Error(err))
		return resolvedDestination{}, false
	}
	var dest resolvedDestination
	if err := json.Unmarshal([]byte(data), &dest); err != nil {
		return resolvedDestination{}, false
	}
	return dest, true
}

func (c *Client) storeDestination(ctx context.Context, cityQuery string, dest resolvedDestination) {
	if c.Cache == nil {
		return
	}
	key := destCachePrefix + strings.ToLower(strings.TrimSpace(cityQuery))
	b, err := json.Marshal(dest)
	if err != nil {
		return
	}
	if err := c.Cache.Set(ctx, key, b, destCacheTTL).Err(); err != nil {
		c.logger().Debug("Destination cache write failed", zap.Error(err))
	}
}
