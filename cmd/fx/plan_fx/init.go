package plan_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelbah/internal/services"
	"travelbah/pkg/utils"
)

var Module = fx.Provide(
	provideScorer,
	providePlanService)

func provideScorer(clock utils.Clock, loc *time.Location) services.ScoringServiceInterface {
	return services.NewScorer(clock, loc)
}

func providePlanService(
	catalog services.CatalogServiceInterface,
	routes services.RouteServiceInterface,
	scorer services.ScoringServiceInterface,
	clock utils.Clock,
	loc *time.Location,
	logger *zap.Logger,
) services.PlanServiceInterface {
	return services.NewPlanService(catalog, routes, scorer, clock, loc, logger)
}
