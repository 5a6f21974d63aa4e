package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"travelbah/internal/models/trip_models"
)

// --------- Geocode cache keyed by normalized place text ---------

type GeocodeCache interface {
	Get(ctx context.Context, key string) (trip_models.Coordinate, bool)
	Set(ctx context.Context, key string, v trip_models.Coordinate, ttl time.Duration)
}

type inMemoryGeocodeCache struct {
	store *cache.Cache
}

func NewInMemoryGeocodeCache(defaultTTL time.Duration) GeocodeCache {
	return &inMemoryGeocodeCache{store: cache.New(defaultTTL, time.Hour)}
}

func (c *inMemoryGeocodeCache) Get(_ context.Context, key string) (trip_models.Coordinate, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return trip_models.Coordinate{}, false
	}
	coord, ok := v.(trip_models.Coordinate)
	return coord, ok
}

func (c *inMemoryGeocodeCache) Set(_ context.Context, key string, v trip_models.Coordinate, ttl time.Duration) {
	c.store.Set(key, v, ttl)
}

const redisGeocodePrefix = "geocode:"

// redisGeocodeCache shares geocode results between service instances.
// Redis errors degrade to cache misses.
type redisGeocodeCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisGeocodeCache(client *redis.Client, logger *zap.Logger) GeocodeCache {
	return &redisGeocodeCache{client: client, logger: logger}
}

func (c *redisGeocodeCache) Get(ctx context.Context, key string) (trip_models.Coordinate, bool) {
	raw, err := c.client.Get(ctx, redisGeocodePrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis geocode get failed", zap.String("key", key), zap.Error(err))
		}
		return trip_models.Coordinate{}, false
	}
	var coord trip_models.Coordinate
	if err := json.Unmarshal(raw, &coord); err != nil {
		c.logger.Warn("redis geocode entry unreadable", zap.String("key", key), zap.Error(err))
		return trip_models.Coordinate{}, false
	}
	return coord, true
}

func (c *redisGeocodeCache) Set(ctx context.Context, key string, v trip_models.Coordinate, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, redisGeocodePrefix+key, raw, ttl).Err(); err != nil {
		c.logger.Warn("redis geocode set failed", zap.String("key", key), zap.Error(err))
	}
}

// cachedGeocoder memoizes positive answers from a live geocoder.
type cachedGeocoder struct {
	next  Geocoder
	cache GeocodeCache
	ttl   time.Duration
}

func NewCachedGeocoder(next Geocoder, c GeocodeCache, ttl time.Duration) Geocoder {
	return &cachedGeocoder{next: next, cache: c, ttl: ttl}
}

func (g *cachedGeocoder) Name() string { return g.next.Name() }

func (g *cachedGeocoder) Geocode(ctx context.Context, text string) (trip_models.Coordinate, bool, error) {
	key := g.next.Name() + ":" + normalizePlace(text)
	if coord, ok := g.cache.Get(ctx, key); ok {
		return coord, true, nil
	}
	coord, ok, err := g.next.Geocode(ctx, text)
	if err != nil || !ok {
		return coord, ok, err
	}
	g.cache.Set(ctx, key, coord, g.ttl)
	return coord, true, nil
}
