package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"travelbah/internal/models/db_models"
)

// InitPostgresql opens the catalog mirror database and migrates its tables.
func InitPostgresql(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := connectionPool.AutoMigrate(&db_models.POI{}); err != nil {
		return nil, fmt.Errorf("migrate catalog tables: %w", err)
	}

	logger.Info("PostgreSQL connected")
	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Warn("error closing database connection", zap.Error(err))
	} else {
		logger.Info("PostgreSQL database connection closed successfully")
	}
}
