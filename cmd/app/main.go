package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelbah/cmd/fx/config_fx"
	"travelbah/cmd/fx/controllers_fx"
	"travelbah/cmd/fx/db_fx"
	"travelbah/cmd/fx/logger_fx"
	"travelbah/cmd/fx/memcache_fx"
	"travelbah/cmd/fx/plan_fx"
	poisfx "travelbah/cmd/fx/pois_fx"
	"travelbah/cmd/fx/routing_fx"
	"travelbah/internal/api/controllers"
	"travelbah/internal/config"
	"travelbah/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		routing_fx.Module,
		poisfx.Module,
		plan_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	poisController *controllers.POIsController,
	planController *controllers.PlanController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, poisController, planController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	poisController *controllers.POIsController,
	planController *controllers.PlanController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	poisGroup := r.Group("/pois")
	poisGroup.GET("", poisController.ListPois)
	poisGroup.GET("/:id", poisController.GetPoiById)

	plansGroup := r.Group("/plans")
	plansGroup.POST("", planController.BuildPlan)
}
