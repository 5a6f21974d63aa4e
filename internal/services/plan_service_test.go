package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kr/pretty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"travelbah/internal/models/request_models"
	"travelbah/internal/models/response_models"
	"travelbah/internal/models/trip_models"
	"travelbah/pkg/utils"
)

type fakeRouteService struct {
	resolved trip_models.ResolvedRoute
	err      error
	gotMode  trip_models.Mode
}

func (f *fakeRouteService) ResolveRoute(_ context.Context, _, _ string, mode trip_models.Mode) (trip_models.ResolvedRoute, error) {
	f.gotMode = mode
	return f.resolved, f.err
}

var myt = time.FixedZone("MYT", 8*3600)

func planFixture(t *testing.T, catalog []trip_models.POI, logger *zap.Logger) (PlanServiceInterface, *fakeRouteService, *Scorer) {
	t.Helper()
	path := SynthesizeRoute(trip_models.Coordinate{Lng: 117.80, Lat: 4.20}, trip_models.Coordinate{Lng: 117.98, Lat: 4.29}).Path
	routes := &fakeRouteService{resolved: trip_models.ResolvedRoute{
		Origin:      path[0],
		Destination: path[len(path)-1],
		Route: trip_models.Route{
			Path:       path,
			DistanceKm: 27.6,
			EtaMinutes: 72,
			Source:     trip_models.RouteSourceSynthesized,
		},
	}}
	// 04:30 UTC is lunchtime in Sabah.
	clock := utils.FixedClock(time.Date(2025, 6, 1, 4, 30, 0, 0, time.UTC))
	scorer := NewScorer(clock, myt)
	catalogSvc := NewCatalogService(catalog, nil, zap.NewNop())
	return NewPlanService(catalogSvc, routes, scorer, clock, myt, logger), routes, scorer
}

func TestBuildPlan(t *testing.T) {
	catalog := defaultCatalog()
	svc, routes, scorer := planFixture(t, catalog, zap.NewNop())

	plan, err := svc.BuildPlan(context.Background(), request_models.PlanRequest{
		Origin:      "Tawau Airport",
		Destination: "Semporna",
		Mode:        "Food",
		Event:       "none",
	})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if routes.gotMode != trip_models.ModeFood {
		t.Fatalf("route resolved with mode %q", routes.gotMode)
	}

	path := routes.resolved.Route.Path
	wantStops := response_models.NewPOIs(scorer.SelectStops(catalog, path, trip_models.ModeFood, trip_models.EventNone))
	if diff := pretty.Diff(plan.Stops, wantStops); len(diff) > 0 {
		t.Fatalf("stops differ:\n%v", diff)
	}
	if len(plan.Stops) != maxStops {
		t.Fatalf("got %d stops", len(plan.Stops))
	}

	surprise, ok := scorer.SelectSurprise(catalog, path, trip_models.ModeFood)
	switch {
	case ok && (plan.SurpriseDrop == nil || plan.SurpriseDrop.ID != surprise.ID):
		t.Fatalf("surprise = %+v, want %s", plan.SurpriseDrop, surprise.ID)
	case !ok && plan.SurpriseDrop != nil:
		t.Fatalf("unexpected surprise %s", plan.SurpriseDrop.ID)
	}

	if plan.OriginName != "Tawau Airport" || plan.DestinationName != "Semporna" {
		t.Fatalf("names = %q -> %q", plan.OriginName, plan.DestinationName)
	}
	if plan.Mode != "food" || plan.Event != "" {
		t.Fatalf("mode %q event %q", plan.Mode, plan.Event)
	}
	if plan.Route.DistanceKm != 27.6 || plan.Route.EtaMinutes != 72 || plan.Route.Source != "synthesized" {
		t.Fatalf("route = %+v", plan.Route)
	}
	if plan.GeneratedAt != "2025-06-01T12:30:00+08:00" {
		t.Fatalf("generated_at = %s", plan.GeneratedAt)
	}
}

func TestBuildPlan_InvalidInput(t *testing.T) {
	svc, _, _ := planFixture(t, defaultCatalog(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.BuildPlan(ctx, request_models.PlanRequest{Origin: "a", Destination: "b", Mode: "scenic"})
	if !errors.Is(err, utils.ErrInvalidMode) {
		t.Fatalf("bad mode: %v", err)
	}
	_, err = svc.BuildPlan(ctx, request_models.PlanRequest{Origin: "a", Destination: "b", Mode: "chill", Event: "snow"})
	if !errors.Is(err, utils.ErrInvalidEvent) {
		t.Fatalf("bad event: %v", err)
	}
}

func TestBuildPlan_RouteError(t *testing.T) {
	svc, routes, _ := planFixture(t, defaultCatalog(), zap.NewNop())
	routes.err = utils.ErrInvalidInput

	_, err := svc.BuildPlan(context.Background(), request_models.PlanRequest{Mode: "efficient"})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildPlan_ShortItineraryIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	svc, routes, _ := planFixture(t, []trip_models.POI{
		poi("spot-1", "Hill Lookout 1", trip_models.CategorySpot, far(testPath[1])),
	}, zap.New(core))
	routes.resolved.Route.Path = testPath

	plan, err := svc.BuildPlan(context.Background(), request_models.PlanRequest{
		Origin: "a", Destination: "b", Mode: "efficient", Event: "rain",
	})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if len(plan.Stops) != 0 || plan.SurpriseDrop != nil {
		t.Fatalf("plan = %# v", pretty.Formatter(plan))
	}
	if plan.Stops == nil {
		t.Fatal("stops should encode as an empty list")
	}
	if logs.FilterMessage("short itinerary").Len() != 1 {
		t.Fatalf("warnings: %v", logs.All())
	}
}
