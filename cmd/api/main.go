package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/plateful/recipebook/config"
	"github.com/plateful/recipebook/internal/api"
	"github.com/plateful/recipebook/internal/database"
	"github.com/plateful/recipebook/internal/middleware"
	"github.com/plateful/recipebook/internal/repository"
	"github.com/plateful/recipebook/internal/router"
	"github.com/plateful/recipebook/internal/server"
	"github.com/plateful/recipebook/internal/service"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	var limiter *middleware.RateLimiter
	if cfg.RedisHost != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("failed to connect to Redis", zap.Error(err))
		}
		limiter = middleware.NewMutationRateLimiter(redisClient)
	}

	var imageService *service.ImageService
	if cfg.S3Bucket != "" {
		s3Config, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			logger.Fatal("failed to initialize S3", zap.Error(err))
		}
		imageService = service.NewImageService(s3Config)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeRepo := repository.NewGORMRecipeRepository(db)
	recipeService := service.NewRecipeService(recipeRepo, imageService)

	authHandler := api.NewAuthHandler(authService, logger)
	recipeHandler := api.NewRecipeHandler(recipeService, logger)
	profileHandler := api.NewProfileHandler(recipeService, logger)

	engine := router.SetupRouter(cfg, logger, authHandler, recipeHandler, profileHandler, authService, limiter)
	srv := server.New(cfg.ServerHost+":"+cfg.ServerPort, engine, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
