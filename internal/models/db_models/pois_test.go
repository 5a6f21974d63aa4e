package db_models

import (
	"testing"

	"github.com/kr/pretty"
	"travelbah/internal/models/trip_models"
)

func TestPOIFromTrip(t *testing.T) {
	in := trip_models.POI{
		ID:            "food-1",
		Name:          "Seafood House 1",
		Category:      trip_models.CategoryFood,
		Coordinate:    trip_models.Coordinate{Lng: 117.9, Lat: 4.25},
		Tags:          []string{"seafood", "local"},
		PriceLevel:    1,
		PartnerStatus: trip_models.PartnerPartner,
		ShortDesc:     "desc",
		OpenHours:     "10:00-22:00",
	}
	want := POI{
		ID:            "food-1",
		Name:          "Seafood House 1",
		Category:      "food",
		Latitude:      4.25,
		Longitude:     117.9,
		Tags:          []string{"seafood", "local"},
		PriceLevel:    1,
		PartnerStatus: "partner",
		ShortDesc:     "desc",
		OpenHours:     "10:00-22:00",
	}
	if diff := pretty.Diff(POIFromTrip(in), want); len(diff) > 0 {
		t.Fatalf("row mismatch: %v", diff)
	}
}
