package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pinpin/travel-backend/internal/client"
	"github.com/redis/go-redis/v9"
)

// WeatherCache keeps recent weather lookups in Redis so repeated queries for
// the same spot skip the upstream call. Coordinates are rounded to two
// decimals (~1km) when building keys.
type WeatherCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewWeatherCache(rdb *redis.Client, ttl time.Duration) *WeatherCache {
	return &WeatherCache{rdb: rdb, ttl: ttl}
}

// NewRedisClient connects and pings the Redis server.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

func weatherKey(lat, lon float64) string {
	return fmt.Sprintf("weather:%.2f:%.2f", lat, lon)
}

// Get returns the cached weather or (nil, nil) on a miss. Cache failures are
// reported so the caller can decide to fall through to the upstream.
func (c *WeatherCache) Get(ctx context.Context, lat, lon float64) (*client.CurrentWeather, error) {
	raw, err := c.rdb.Get(ctx, weatherKey(lat, lon)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var weather client.CurrentWeather
	if err := json.Unmarshal(raw, &weather); err != nil {
		return nil, err
	}
	return &weather, nil
}

func (c *WeatherCache) Set(ctx context.Context, lat, lon float64, weather *client.CurrentWeather) error {
	raw, err := json.Marshal(weather)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, weatherKey(lat, lon), raw, c.ttl).Err()
}
