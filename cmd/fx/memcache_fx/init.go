package memcache_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelbah/internal/config"
	"travelbah/internal/infra"
	"travelbah/internal/services"
)

var Module = fx.Provide(provideGeocodeCache)

// provideGeocodeCache shares results through Redis when REDIS_ADDR is set
// and reachable, otherwise keeps them in process.
func provideGeocodeCache(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) services.GeocodeCache {
	if !cfg.Redis.Enabled() {
		return services.NewInMemoryGeocodeCache(cfg.Backends.GeocodeCacheTTL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Backends.Timeout)
	defer cancel()
	client, err := infra.InitRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB, logger)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory geocode cache", zap.Error(err))
		return services.NewInMemoryGeocodeCache(cfg.Backends.GeocodeCacheTTL)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return services.NewRedisGeocodeCache(client, logger)
}
