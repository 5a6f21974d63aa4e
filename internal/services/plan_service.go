package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"travelbah/internal/models/request_models"
	"travelbah/internal/models/response_models"
	"travelbah/internal/models/trip_models"
	"travelbah/pkg/utils"
)

type PlanServiceInterface interface {
	BuildPlan(ctx context.Context, req request_models.PlanRequest) (response_models.PlanResponse, error)
}

type PlanService struct {
	catalog CatalogServiceInterface
	routes  RouteServiceInterface
	scorer  ScoringServiceInterface
	clock   utils.Clock
	loc     *time.Location
	logger  *zap.Logger
}

func NewPlanService(
	catalog CatalogServiceInterface,
	routes RouteServiceInterface,
	scorer ScoringServiceInterface,
	clock utils.Clock,
	loc *time.Location,
	logger *zap.Logger,
) PlanServiceInterface {
	return &PlanService{
		catalog: catalog,
		routes:  routes,
		scorer:  scorer,
		clock:   clock,
		loc:     loc,
		logger:  logger,
	}
}

// BuildPlan resolves the route, picks the stops and the surprise drop.
// The surprise is chosen independently and may repeat a stop.
func (p *PlanService) BuildPlan(ctx context.Context, req request_models.PlanRequest) (response_models.PlanResponse, error) {
	mode, err := trip_models.ParseMode(req.Mode)
	if err != nil {
		return response_models.PlanResponse{}, fmt.Errorf("%w: %v", utils.ErrInvalidMode, err)
	}
	event, err := trip_models.ParseEvent(req.Event)
	if err != nil {
		return response_models.PlanResponse{}, fmt.Errorf("%w: %v", utils.ErrInvalidEvent, err)
	}

	resolved, err := p.routes.ResolveRoute(ctx, req.Origin, req.Destination, mode)
	if err != nil {
		return response_models.PlanResponse{}, err
	}

	pois := p.catalog.All()
	path := resolved.Route.Path
	stops := p.scorer.SelectStops(pois, path, mode, event)
	surprise, hasSurprise := p.scorer.SelectSurprise(pois, path, mode)

	out := response_models.PlanResponse{
		OriginName:      req.Origin,
		DestinationName: req.Destination,
		Origin:          resolved.Origin,
		Destination:     resolved.Destination,
		Mode:            string(mode),
		Event:           string(event),
		Route: response_models.Route{
			Path:       path,
			DistanceKm: resolved.Route.DistanceKm,
			EtaMinutes: resolved.Route.EtaMinutes,
			Source:     string(resolved.Route.Source),
		},
		Stops:       response_models.NewPOIs(stops),
		GeneratedAt: utils.FormatRFC3339Local(p.clock.Now(), p.loc),
	}
	if hasSurprise {
		drop := response_models.NewPOI(surprise)
		out.SurpriseDrop = &drop
	}

	if len(stops) < minStops {
		p.logger.Warn("short itinerary",
			zap.Int("stops", len(stops)), zap.String("mode", string(mode)), zap.String("event", string(event)))
	}
	p.logger.Info("plan built",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.String("mode", string(mode)),
		zap.String("route_source", string(resolved.Route.Source)),
		zap.Float64("distance_km", resolved.Route.DistanceKm),
		zap.Int("stops", len(stops)),
		zap.Bool("surprise", hasSurprise),
	)
	return out, nil
}
