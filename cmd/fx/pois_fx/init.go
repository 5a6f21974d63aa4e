package poisfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelbah/internal/repositories"
	"travelbah/internal/services"
)

var Module = fx.Options(
	fx.Provide(providePoisRepo, provideCatalogService),
	fx.Invoke(syncCatalogOnStart),
)

func providePoisRepo(db *gorm.DB) repositories.POIRepository {
	if db == nil {
		return nil
	}
	return repositories.NewPOIRepository(db)
}

// provideCatalogService builds the catalog once for the process lifetime.
func provideCatalogService(poiRepo repositories.POIRepository, logger *zap.Logger) services.CatalogServiceInterface {
	pois := services.BuildCatalog(services.DefaultTemplates(), services.ServiceCenter)
	logger.Info("catalog built", zap.Int("pois", len(pois)))
	return services.NewCatalogService(pois, poiRepo, logger)
}

// syncCatalogOnStart mirrors the catalog into Postgres. A failed sync is
// logged and does not stop the service.
func syncCatalogOnStart(lc fx.Lifecycle, catalog services.CatalogServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = catalog.SyncCatalog(ctx)
			return nil
		},
	})
}
