package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/plateful/recipebook/config"
	"github.com/plateful/recipebook/internal/database"
	"github.com/plateful/recipebook/internal/models"
	"github.com/plateful/recipebook/internal/repository"
	"github.com/plateful/recipebook/internal/service"
)

// Seeds a demo user with a handful of recipes for local development.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := zap.NewDevelopment()
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

	ctx := context.Background()
	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeRepo := repository.NewGORMRecipeRepository(db)

	user, err := authService.Register(ctx, "demo", "demo-password")
	if err != nil {
		logger.Fatal("failed to create demo user", zap.Error(err))
	}

	recipes := []models.Recipe{
		{
			Title:        "Tomato Soup",
			Description:  "A simple weeknight soup.",
			Instructions: "Sweat the onion, add tomatoes and stock, simmer 20 minutes, blend.",
			UserID:       user.ID,
			Ingredients: []models.Ingredient{
				{Name: "tomatoes", Quantity: "800g"},
				{Name: "onion", Quantity: "1"},
				{Name: "vegetable stock", Quantity: "500ml"},
			},
		},
		{
			Title:        "Garlic Bread",
			Description:  "Goes with the soup.",
			Instructions: "Mix butter and garlic, spread on the baguette, bake at 200C for 10 minutes.",
			UserID:       user.ID,
			Ingredients: []models.Ingredient{
				{Name: "baguette", Quantity: "1"},
				{Name: "butter", Quantity: "100g"},
				{Name: "garlic", Quantity: "3 cloves"},
			},
		},
		{
			Title:        "Pancakes",
			Description:  "",
			Instructions: "Whisk everything together, rest 10 minutes, fry in a hot pan.",
			UserID:       user.ID,
			Ingredients: []models.Ingredient{
				{Name: "flour", Quantity: "200g"},
				{Name: "milk", Quantity: "300ml"},
				{Name: "eggs", Quantity: "2"},
			},
		},
	}

	for i := range recipes {
		if err := recipeRepo.Create(ctx, &recipes[i]); err != nil {
			logger.Fatal("failed to seed recipe", zap.String("title", recipes[i].Title), zap.Error(err))
		}
		logger.Info("seeded recipe", zap.String("title", recipes[i].Title))
	}

	logger.Info("seeding complete", zap.Int("recipes", len(recipes)))
}
