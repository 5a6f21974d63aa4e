package config_fx

import (
	"time"

	"go.uber.org/fx"
	"travelbah/internal/config"
	"travelbah/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLocation,
	provideClock)

func provideLocation(cfg *config.Config) *time.Location {
	return utils.LoadServiceLocation(cfg.Timezone)
}

func provideClock() utils.Clock {
	return utils.SystemClock()
}
