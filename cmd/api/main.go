package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/campus-kit/lostfound-service/internal/api/http"
	"github.com/campus-kit/lostfound-service/internal/api/http/handlers"
	"github.com/campus-kit/lostfound-service/internal/auth"
	"github.com/campus-kit/lostfound-service/internal/cache"
	"github.com/campus-kit/lostfound-service/internal/config"
	"github.com/campus-kit/lostfound-service/internal/events"
	"github.com/campus-kit/lostfound-service/internal/observability"
	"github.com/campus-kit/lostfound-service/internal/persistence"
	"github.com/campus-kit/lostfound-service/internal/repository"
	"github.com/campus-kit/lostfound-service/internal/service"
	"github.com/campus-kit/lostfound-service/internal/storage"
	"github.com/campus-kit/lostfound-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	itemRepo := repository.NewItemRepository(pool)
	credentialRepo := repository.NewCredentialRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)

	var resolver storage.ImageResolver
	if s3Resolver, err := storage.NewS3Resolver(ctx, cfg.Storage, logger); err != nil {
		logger.Fatal("failed to init image resolver", zap.Error(err))
	} else if s3Resolver != nil {
		resolver = s3Resolver
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	statsCache := cache.New(redis.Client)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		CredentialRepo: credentialRepo,
		ProfileRepo:    profileRepo,
	})
	statsService := service.NewStatsService(itemRepo, statsCache)
	itemService := service.NewItemService(service.ItemDependencies{
		ItemRepo:    itemRepo,
		ProfileRepo: profileRepo,
		Resolver:    resolver,
		Dispatcher:  dispatcher,
		Stats:       statsService,
		Logger:      logger,
	})
	sweepService := service.NewSweepService(service.SweepDependencies{
		ItemRepo:   itemRepo,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
		MaxAge:     cfg.Sweep.MaxAge(),
	})

	notificationService := service.NewNotificationService(dispatcher, logger)
	notificationService.RegisterHandlers()

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), credentialRepo, profileRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Items:          handlers.NewItemsHandler(itemService),
		Stats:          handlers.NewStatsHandler(statsService),
		Sweep:          handlers.NewSweepHandler(sweepService, cfg.Sweep.InternalKey),
		AuthMiddleware: authMiddleware,
	})

	worker.StartSweepWorker(ctx, sweepService, cfg.Sweep, logger)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)
	cancel()

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
