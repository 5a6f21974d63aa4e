package db_models

import "travelbah/internal/models/trip_models"

// POI is the catalog mirror row. ID is the stable catalog id, not a uuid.
type POI struct {
	ID            string   `gorm:"primaryKey"`
	Name          string   `gorm:"not null"`
	Category      string   `gorm:"index;not null"`
	Latitude      float64
	Longitude     float64
	Tags          []string `gorm:"serializer:json"`
	PriceLevel    int
	PartnerStatus string
	ShortDesc     string
	OpenHours     string
	CreatedAt     int64 `gorm:"autoCreateTime"`
	UpdatedAt     int64 `gorm:"autoUpdateTime"`
}

func (POI) TableName() string { return "catalog_pois" }

func POIFromTrip(p trip_models.POI) POI {
	return POI{
		ID:            p.ID,
		Name:          p.Name,
		Category:      string(p.Category),
		Latitude:      p.Coordinate.Lat,
		Longitude:     p.Coordinate.Lng,
		Tags:          p.Tags,
		PriceLevel:    p.PriceLevel,
		PartnerStatus: string(p.PartnerStatus),
		ShortDesc:     p.ShortDesc,
		OpenHours:     p.OpenHours,
	}
}
