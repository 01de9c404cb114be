package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetops/dispatch/internal/pkg/config"
	"github.com/fleetops/dispatch/internal/pkg/database"
	"github.com/fleetops/dispatch/internal/pkg/health"
	"github.com/fleetops/dispatch/internal/pkg/logger"
	"github.com/fleetops/dispatch/internal/pkg/middleware"
	"github.com/fleetops/dispatch/internal/pkg/nats"
	nrpkg "github.com/fleetops/dispatch/internal/pkg/newrelic"
	"github.com/fleetops/dispatch/internal/pkg/server"
	"github.com/fleetops/dispatch/internal/pkg/websocket"
	plannerGateway "github.com/fleetops/dispatch/services/planner/gateway"
	plannerHandler "github.com/fleetops/dispatch/services/planner/handler"
	plannerRepo "github.com/fleetops/dispatch/services/planner/repository"
	plannerUC "github.com/fleetops/dispatch/services/planner/usecase"
	settingsHandler "github.com/fleetops/dispatch/services/settings/handler"
	settingsRepo "github.com/fleetops/dispatch/services/settings/repository"
	settingsUC "github.com/fleetops/dispatch/services/settings/usecase"
	tripsGateway "github.com/fleetops/dispatch/services/trips/gateway"
	tripsHandler "github.com/fleetops/dispatch/services/trips/handler"
	tripsRepo "github.com/fleetops/dispatch/services/trips/repository"
	tripsUC "github.com/fleetops/dispatch/services/trips/usecase"
)

func main() {
	appName := "dispatch-service"
	configs := config.InitConfig("config/dispatch.env")

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Repositories
	fleetRepository := plannerRepo.NewFleetRepository(configs, redisClient.GetClient())
	tripRepository := tripsRepo.NewTripRepository(configs, postgresClient.GetDB())
	settingsRepository := settingsRepo.NewSettingsRepository(configs, postgresClient.GetDB())

	// Usecases
	settingsUsecase := settingsUC.NewSettingsUC(configs, settingsRepository)

	fleetGateway := plannerGateway.NewFleetGW(natsClient)
	plannerUsecase, err := plannerUC.NewPlannerUC(configs, fleetRepository, fleetGateway, settingsUsecase)
	if err != nil {
		zapLogger.Fatal("Failed to initialize planner use case", logger.Err(err))
	}

	tripGateway := tripsGateway.NewTripGW(natsClient)
	tripUsecase, err := tripsUC.NewTripUC(configs, tripRepository, tripGateway, plannerUsecase)
	if err != nil {
		zapLogger.Fatal("Failed to initialize trip use case", logger.Err(err))
	}

	// WebSocket manager for the live trip feed
	wsManager := websocket.NewManager(configs.JWT)

	// Handlers
	plannerH := plannerHandler.NewHandler(plannerUsecase, configs)
	tripsH := tripsHandler.NewHandler(tripUsecase, natsClient, wsManager, configs)
	settingsH := settingsHandler.NewHandler(settingsUsecase, configs)

	if err := tripsH.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true

	// Panic recovery first so every later middleware is covered
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	plannerH.RegisterRoutes(e, apiKeyMiddleware)
	tripsH.RegisterRoutes(e)
	settingsH.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		tripsH.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(10 * time.Second)
		}
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Error during component shutdown", logger.Err(err))
	}

	logger.Info("Server exiting gracefully")
}
