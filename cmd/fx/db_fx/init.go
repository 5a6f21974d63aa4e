package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelbah/internal/config"
	"travelbah/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB returns a nil *gorm.DB when POSTGRES_URL is unset; the catalog
// then lives in memory only.
func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	if !cfg.Database.Enabled() {
		logger.Info("POSTGRES_URL not set, catalog mirror disabled")
		return nil, nil
	}

	db, err := infra.InitPostgresql(cfg.Database.URL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}
