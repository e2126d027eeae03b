package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"pulse/internal/config"
	"pulse/internal/database"
	"pulse/internal/database/migration"
	"pulse/internal/http/handler"
	"pulse/internal/http/middleware"
	"pulse/internal/otel"
	"pulse/internal/queue"
	"pulse/internal/repository/postgres"
	"pulse/internal/service"
	"pulse/internal/token"
	"pulse/internal/worker"
)

func main() {
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Fatalf("invalid time zone %q: %v", cfg.TimeZone, err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	tm := token.NewManager(cfg.Auth.Secret,
		time.Duration(cfg.Auth.AccessTTLMin)*time.Minute,
		time.Duration(cfg.Auth.RefreshTTLHour)*time.Hour,
	)
	blacklist := token.NewRedisBlacklist(rdb)
	scheduler := queue.NewRedisScheduler(rdb, cfg.Scheduler.QueueKey, logger)

	userRepo := postgres.NewUserPostgres(db)
	profileRepo := postgres.NewProfilePostgres(db)
	postRepo := postgres.NewPostPostgres(db)
	followRepo := postgres.NewFollowPostgres(db)
	likeRepo := postgres.NewLikePostgres(db)
	commentRepo := postgres.NewCommentPostgres(db)

	svcs := handler.Services{
		Auth:     service.NewAuthService(userRepo, profileRepo, tm, blacklist),
		Users:    service.NewUserService(userRepo),
		Profiles: service.NewProfileService(profileRepo, followRepo),
		Posts: service.NewPostService(postRepo, userRepo, scheduler, loc,
			time.Duration(cfg.Scheduler.MinDelaySec)*time.Second),
		Follows:  service.NewFollowService(followRepo, userRepo),
		Likes:    service.NewLikeService(likeRepo, postRepo),
		Comments: service.NewCommentService(commentRepo, postRepo),
	}

	publisher := worker.NewPublisher(scheduler, postRepo, userRepo, logger,
		time.Duration(cfg.Scheduler.PollIntervalSec)*time.Second,
		cfg.Scheduler.BatchSize,
	)
	go publisher.Run(ctx)

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler(),
	})

	registry := prometheus.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(loc))
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())

	handler.RegisterRoutes(app, db, tm, svcs, registry, loc)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}()

	addr := cfg.AppHost + ":" + cfg.Port
	logger.Info("server listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
