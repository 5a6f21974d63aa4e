package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"travelbah/internal/geo"
	"travelbah/internal/models/trip_models"
	"travelbah/internal/repositories"
	"travelbah/pkg/utils"
)

// ServiceCenter is the middle of the Tawau service region.
var ServiceCenter = trip_models.Coordinate{Lng: 117.889, Lat: 4.244}

// CategoryTemplate drives generation of one category's POIs.
type CategoryTemplate struct {
	Category  trip_models.Category
	Count     int
	BaseNames []string
	Tags      []string
}

func DefaultTemplates() []CategoryTemplate {
	return []CategoryTemplate{
		{
			Category:  trip_models.CategoryFood,
			Count:     60,
			BaseNames: []string{"Seafood House", "Nasi Corner", "Satay Yard", "Halal Grill", "Local Kopitiam", "Roti Place"},
			Tags:      []string{"seafood", "local", "family", "halal", "cafe"},
		},
		{
			Category:  trip_models.CategoryStay,
			Count:     15,
			BaseNames: []string{"Harbor Hotel", "Lagoon Inn", "Town Suites", "Borneo Lodge", "Palm Stay"},
			Tags:      []string{"family", "budget", "city", "quiet"},
		},
		{
			Category:  trip_models.CategorySpot,
			Count:     15,
			BaseNames: []string{"Sunset Point", "Mangrove Walk", "Waterfront Deck", "Hill View", "Heritage Square"},
			Tags:      []string{"sunset", "photo", "nature", "local"},
		},
		{
			Category:  trip_models.CategoryEntertainment,
			Count:     10,
			BaseNames: []string{"Bowling Zone", "Game Loft", "Cinema Hub", "Karaoke Bay", "Mini Park"},
			Tags:      []string{"indoor", "family", "night", "fun"},
		},
	}
}

var descByCategory = map[trip_models.Category]string{
	trip_models.CategoryFood:          "Popular local stop with quick service and reliable taste for travelers.",
	trip_models.CategoryStay:          "Convenient stay option near the route with practical facilities.",
	trip_models.CategorySpot:          "Easy photo-friendly landmark with strong Tawau local vibe.",
	trip_models.CategoryEntertainment: "Casual indoor option if weather changes or you need a break.",
}

const defaultOpenHours = "10:00-22:00"

// SeededOffset is a pure trigonometric hash of idx that looks random but is
// fully deterministic. It is not statistically or cryptographically random.
// Latitude stays within ±0.11 and longitude within ±0.14 degrees.
func SeededOffset(idx int) (dLat, dLng float64) {
	a := math.Sin(float64(idx)*12.9898) * 43758.5453
	b := math.Sin(float64(idx+7)*78.233) * 12345.6789
	dLat = (a - math.Floor(a) - 0.5) * 0.22
	dLng = (b - math.Floor(b) - 0.5) * 0.28
	return dLat, dLng
}

// BuildCatalog generates the POI catalog from templates around center.
// Malformed templates are a programming error and panic.
func BuildCatalog(templates []CategoryTemplate, center trip_models.Coordinate) []trip_models.POI {
	total := 0
	for _, tpl := range templates {
		if _, err := trip_models.ParseCategory(string(tpl.Category)); err != nil {
			panic(fmt.Sprintf("catalog template: %v", err))
		}
		if tpl.Count <= 0 || len(tpl.BaseNames) == 0 {
			panic(fmt.Sprintf("catalog template %s: count and base names are required", tpl.Category))
		}
		total += tpl.Count
	}

	pois := make([]trip_models.POI, 0, total)
	for _, tpl := range templates {
		for i := 0; i < tpl.Count; i++ {
			pois = append(pois, makePoi(tpl, i, center))
		}
	}
	return pois
}

func makePoi(tpl CategoryTemplate, i int, center trip_models.Coordinate) trip_models.POI {
	dLat, dLng := SeededOffset(i + len(tpl.Category)*17)

	partner := trip_models.PartnerNone
	if i%5 == 0 {
		partner = trip_models.PartnerPartner
	}

	tags := make([]string, len(tpl.Tags))
	copy(tags, tpl.Tags)

	return trip_models.POI{
		ID:       fmt.Sprintf("%s-%d", tpl.Category, i+1),
		Name:     fmt.Sprintf("%s %d", tpl.BaseNames[i%len(tpl.BaseNames)], i+1),
		Category: tpl.Category,
		Coordinate: trip_models.Coordinate{
			Lng: geo.Round(center.Lng+dLng, 6),
			Lat: geo.Round(center.Lat+dLat, 6),
		},
		Tags:          tags,
		PriceLevel:    (i % 4) + 1,
		PartnerStatus: partner,
		ShortDesc:     descByCategory[tpl.Category],
		OpenHours:     defaultOpenHours,
	}
}

type CatalogServiceInterface interface {
	All() []trip_models.POI
	GetByID(id string) (trip_models.POI, error)
	Page(page, pageSize int) ([]trip_models.POI, error)
	SyncCatalog(ctx context.Context) error
}

// CatalogService serves a catalog built once at startup. The slice is never
// mutated after construction, so it is safe for concurrent readers.
type CatalogService struct {
	pois    []trip_models.POI
	byID    map[string]int
	poiRepo repositories.POIRepository
	logger  *zap.Logger
}

// NewCatalogService takes ownership of pois. poiRepo may be nil when no
// database is configured.
func NewCatalogService(pois []trip_models.POI, poiRepo repositories.POIRepository, logger *zap.Logger) *CatalogService {
	byID := make(map[string]int, len(pois))
	for i, p := range pois {
		if _, dup := byID[p.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate poi id %q", p.ID))
		}
		byID[p.ID] = i
	}
	return &CatalogService{pois: pois, byID: byID, poiRepo: poiRepo, logger: logger}
}

func (c *CatalogService) All() []trip_models.POI {
	return c.pois
}

func (c *CatalogService) GetByID(id string) (trip_models.POI, error) {
	i, ok := c.byID[id]
	if !ok {
		return trip_models.POI{}, utils.ErrPOINotFound
	}
	return c.pois[i], nil
}

func (c *CatalogService) Page(page, pageSize int) ([]trip_models.POI, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	start := (page - 1) * pageSize
	if start >= len(c.pois) {
		return []trip_models.POI{}, nil
	}
	end := start + pageSize
	if end > len(c.pois) {
		end = len(c.pois)
	}
	return c.pois[start:end], nil
}

// SyncCatalog mirrors the catalog into the database so other collaborators
// can read it. It is a no-op without a repository.
func (c *CatalogService) SyncCatalog(ctx context.Context) error {
	if c.poiRepo == nil {
		return nil
	}
	n, err := c.poiRepo.UpsertAll(ctx, c.pois)
	if err != nil {
		c.logger.Warn("catalog sync failed", zap.Error(err))
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	c.logger.Info("catalog synced", zap.Int("pois", n))
	return nil
}
