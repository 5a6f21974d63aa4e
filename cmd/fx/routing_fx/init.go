package routing_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelbah/internal/config"
	"travelbah/internal/services"
)

var Module = fx.Provide(
	provideBackends,
	provideRouteService)

func provideBackends(cfg *config.Config, cache services.GeocodeCache, logger *zap.Logger) (services.Backends, error) {
	return services.NewBackends(cfg.Backends, cache, logger)
}

func provideRouteService(cfg *config.Config, backends services.Backends, logger *zap.Logger) services.RouteServiceInterface {
	return services.NewRouteService(backends.Geocoder, backends.Router, cfg.Backends.Timeout, logger)
}
