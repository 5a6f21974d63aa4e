package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/kr/pretty"
	"go.uber.org/zap"
	"travelbah/internal/models/trip_models"
	"travelbah/pkg/utils"
)

func defaultCatalog() []trip_models.POI {
	return BuildCatalog(DefaultTemplates(), ServiceCenter)
}

func TestBuildCatalog_Deterministic(t *testing.T) {
	first := defaultCatalog()
	second := defaultCatalog()
	if diff := pretty.Diff(first, second); len(diff) > 0 {
		t.Fatalf("catalog differs between builds:\n%v", diff)
	}
}

func TestBuildCatalog_CountAndUniqueIDs(t *testing.T) {
	pois := defaultCatalog()

	want := 0
	for _, tpl := range DefaultTemplates() {
		want += tpl.Count
	}
	if len(pois) != want || want != 100 {
		t.Fatalf("got %d pois, want %d (100)", len(pois), want)
	}

	seen := make(map[string]bool, len(pois))
	for _, p := range pois {
		if seen[p.ID] {
			t.Fatalf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestBuildCatalog_Fields(t *testing.T) {
	pois := defaultCatalog()

	first := pois[0]
	if first.ID != "food-1" || first.Name != "Seafood House 1" || first.Family() != "Seafood" {
		t.Fatalf("unexpected first poi: %# v", pretty.Formatter(first))
	}

	for i, p := range pois[:60] {
		if p.Category != trip_models.CategoryFood {
			t.Fatalf("poi %d category = %s", i, p.Category)
		}
		if wantPartner := i%5 == 0; p.IsPartner() != wantPartner {
			t.Errorf("%s partner = %v, want %v", p.ID, p.IsPartner(), wantPartner)
		}
		if p.PriceLevel != (i%4)+1 {
			t.Errorf("%s price level = %d", p.ID, p.PriceLevel)
		}
		if p.OpenHours != "10:00-22:00" || p.ShortDesc == "" {
			t.Errorf("%s missing descriptive fields", p.ID)
		}
	}

	if pois[60].ID != "stay-1" || pois[60].Name != "Harbor Hotel 1" {
		t.Fatalf("stay section starts with %s %q", pois[60].ID, pois[60].Name)
	}
	if pois[99].ID != "entertainment-10" || pois[99].Name != "Mini Park 10" {
		t.Fatalf("last poi is %s %q", pois[99].ID, pois[99].Name)
	}
}

func TestBuildCatalog_ClusteredAroundCenter(t *testing.T) {
	const eps = 1e-6
	for _, p := range defaultCatalog() {
		if math.Abs(p.Coordinate.Lat-ServiceCenter.Lat) > 0.11+eps {
			t.Errorf("%s lat %v outside radius", p.ID, p.Coordinate.Lat)
		}
		if math.Abs(p.Coordinate.Lng-ServiceCenter.Lng) > 0.14+eps {
			t.Errorf("%s lng %v outside radius", p.ID, p.Coordinate.Lng)
		}
	}
}

func TestSeededOffset_Pure(t *testing.T) {
	for idx := 0; idx < 200; idx++ {
		lat1, lng1 := SeededOffset(idx)
		lat2, lng2 := SeededOffset(idx)
		if lat1 != lat2 || lng1 != lng2 {
			t.Fatalf("SeededOffset(%d) not deterministic", idx)
		}
	}
}

func TestBuildCatalog_MalformedTemplatePanics(t *testing.T) {
	cases := map[string]CategoryTemplate{
		"no names":     {Category: trip_models.CategoryFood, Count: 2},
		"zero count":   {Category: trip_models.CategoryFood, BaseNames: []string{"A"}},
		"bad category": {Category: "museum", Count: 1, BaseNames: []string{"A"}},
	}
	for name, tpl := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			BuildCatalog([]CategoryTemplate{tpl}, ServiceCenter)
		})
	}
}

func TestCatalogService_Lookup(t *testing.T) {
	svc := NewCatalogService(defaultCatalog(), nil, zap.NewNop())

	poi, err := svc.GetByID("spot-3")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if poi.Name != "Waterfront Deck 3" {
		t.Fatalf("got %q", poi.Name)
	}
	if _, err := svc.GetByID("spot-999"); !errors.Is(err, utils.ErrPOINotFound) {
		t.Fatalf("missing id: err = %v", err)
	}
}

func TestCatalogService_Page(t *testing.T) {
	svc := NewCatalogService(defaultCatalog(), nil, zap.NewNop())

	page, err := svc.Page(2, 40)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if len(page) != 40 || page[0].ID != "food-41" {
		t.Fatalf("page 2 starts at %s with %d items", page[0].ID, len(page))
	}
	last, _ := svc.Page(3, 40)
	if len(last) != 20 {
		t.Fatalf("last page has %d items", len(last))
	}
	beyond, _ := svc.Page(10, 40)
	if len(beyond) != 0 {
		t.Fatalf("page beyond end has %d items", len(beyond))
	}
	if _, err := svc.Page(0, 10); !errors.Is(err, utils.ErrInvalidPage) {
		t.Fatalf("page 0: %v", err)
	}
	if _, err := svc.Page(1, 101); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Fatalf("page size 101: %v", err)
	}
}

func TestNewCatalogService_DuplicateIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate id")
		}
	}()
	p := trip_models.POI{ID: "food-1", Name: "A 1", Category: trip_models.CategoryFood}
	NewCatalogService([]trip_models.POI{p, p}, nil, zap.NewNop())
}

type fakePOIRepo struct {
	upserted []trip_models.POI
	err      error
}

func (f *fakePOIRepo) UpsertAll(_ context.Context, pois []trip_models.POI) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.upserted = append(f.upserted, pois...)
	return len(pois), nil
}

func TestCatalogService_SyncCatalog(t *testing.T) {
	ctx := context.Background()

	if err := NewCatalogService(defaultCatalog(), nil, zap.NewNop()).SyncCatalog(ctx); err != nil {
		t.Fatalf("sync without repo: %v", err)
	}

	repo := &fakePOIRepo{}
	if err := NewCatalogService(defaultCatalog(), repo, zap.NewNop()).SyncCatalog(ctx); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if len(repo.upserted) != 100 {
		t.Fatalf("upserted %d pois", len(repo.upserted))
	}

	failing := &fakePOIRepo{err: errors.New("connection refused")}
	err := NewCatalogService(defaultCatalog(), failing, zap.NewNop()).SyncCatalog(ctx)
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("failing sync: err = %v", err)
	}
}
