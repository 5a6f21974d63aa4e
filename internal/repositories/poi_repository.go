package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"travelbah/internal/models/db_models"
	"travelbah/internal/models/trip_models"
)

type POIRepository interface {
	UpsertAll(ctx context.Context, pois []trip_models.POI) (int, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

// UpsertAll writes the whole catalog in one transaction, updating rows
// that already exist by id.
func (r *poiRepository) UpsertAll(ctx context.Context, pois []trip_models.POI) (int, error) {
	if len(pois) == 0 {
		return 0, nil
	}
	rows := make([]db_models.POI, 0, len(pois))
	for _, p := range pois {
		rows = append(rows, db_models.POIFromTrip(p))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "category", "latitude", "longitude", "tags",
				"price_level", "partner_status", "short_desc", "open_hours", "updated_at",
			}),
		}).CreateInBatches(rows, 50).Error
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
