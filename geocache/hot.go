package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/svillors/star-burger/geo"
)

// HotCache keeps geocoded points in redis in front of the places
// table. A zero TTL keeps entries until they are explicitly
// invalidated, matching the persistent tier.
type HotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewHotCache(client *redis.Client, ttl time.Duration) *HotCache {
	return &HotCache{client: client, ttl: ttl}
}

func placeKey(address string) string {
	return "place:" + address
}

type cachedPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c *HotCache) Get(ctx context.Context, address string) (geo.Point, bool, error) {
	raw, err := c.client.Get(ctx, placeKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return geo.Point{}, false, nil
	}
	if err != nil {
		return geo.Point{}, false, err
	}

	var cached cachedPoint
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return geo.Point{}, false, err
	}
	return geo.Point{Lat: cached.Lat, Lng: cached.Lng}, true, nil
}

func (c *HotCache) Set(ctx context.Context, address string, point geo.Point) error {
	raw, err := json.Marshal(cachedPoint{Lat: point.Lat, Lng: point.Lng})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, placeKey(address), raw, c.ttl).Err()
}

func (c *HotCache) Delete(ctx context.Context, address string) error {
	return c.client.Del(ctx, placeKey(address)).Err()
}
