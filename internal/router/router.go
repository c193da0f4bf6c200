package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/plateful/recipebook/config"
	"github.com/plateful/recipebook/internal/api"
	"github.com/plateful/recipebook/internal/middleware"
	"github.com/plateful/recipebook/internal/service"
)

// SetupRouter configures the application routes. limiter may be nil when
// Redis is not configured.
func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	profileHandler *api.ProfileHandler,
	authService service.IAuthService,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	authRequired := middleware.AuthMiddleware(authService)

	authHandler.RegisterRoutes(router)
	recipeHandler.RegisterRoutes(router, authRequired, limiter)
	profileHandler.RegisterRoutes(router, authRequired)

	return router
}
