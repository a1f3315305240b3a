package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/travelmate-app/travelmate-backend/config"
	_ "github.com/travelmate-app/travelmate-backend/docs"
	"github.com/travelmate-app/travelmate-backend/handlers"
	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/middleware"
)

// Dependencies holds everything needed to wire the route table.
type Dependencies struct {
	Config                *config.Config
	RedisClient           *redis.Client
	UserStore             store.UserStore
	PlanHandler           *handlers.PlanHandler
	DestinationHandler    *handlers.DestinationHandler
	RecommendationHandler *handlers.RecommendationHandler
	WishlistHandler       *handlers.WishlistHandler
	UserHandler           *handlers.UserHandler
	AdminHandler          *handlers.AdminHandler
	AuthHandler           *handlers.AuthHandler
	HealthHandler         *handlers.HealthHandler
	PresenceHandler       *handlers.PresenceHandler
	MetricsRegistry       *prometheus.Registry
	Logger                *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Global middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	httpMetrics := middleware.NewHTTPMetrics(deps.MetricsRegistry)
	r.Use(httpMetrics.Middleware())

	// Health and metrics routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{})))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/v1")
	{
		// Auth routes (no token yet)
		v1.POST("/auth/refresh", deps.AuthHandler.RefreshTokenHandler)

		// Share links carry their own authorization
		v1.GET("/shared/itinerary", deps.PlanHandler.SharedItineraryHandler)

		authMiddleware := middleware.AuthMiddleware(deps.Config.ExternalServices.SupabaseJWTSecret)
		rateLimiter := middleware.RateLimiter(deps.RedisClient, deps.Config.RateLimit)

		authRoutes := v1.Group("")
		authRoutes.Use(authMiddleware)
		authRoutes.Use(rateLimiter)
		{
			// Presence
			authRoutes.GET("/ws/presence", deps.PresenceHandler.HandlePresenceSocket)
			authRoutes.GET("/presence", deps.PresenceHandler.OnlineStatusHandler)

			// Trip plan routes
			planRoutes := authRoutes.Group("/plans")
			{
				planRoutes.POST("/preview", deps.PlanHandler.PreviewPlanHandler)
				planRoutes.POST("", deps.PlanHandler.CreatePlanHandler)
				planRoutes.GET("", deps.PlanHandler.ListPlansHandler)
				planRoutes.GET("/:id", deps.PlanHandler.GetPlanHandler)
				planRoutes.PUT("/:id", deps.PlanHandler.UpdatePlanHandler)
				planRoutes.DELETE("/:id", deps.PlanHandler.DeletePlanHandler)
				planRoutes.GET("/:id/itinerary", deps.PlanHandler.GetItineraryHandler)
				planRoutes.POST("/:id/share", deps.PlanHandler.SharePlanHandler)
				planRoutes.POST("/:id/share-link", deps.PlanHandler.CreateShareLinkHandler)
			}

			// Catalog routes (read-only for travelers)
			destinationRoutes := authRoutes.Group("/destinations")
			{
				destinationRoutes.GET("", deps.DestinationHandler.ListDestinationsHandler)
				destinationRoutes.GET("/:id", deps.DestinationHandler.GetDestinationHandler)
			}

			// Recommendations
			authRoutes.GET("/recommendations", deps.RecommendationHandler.GetRecommendationsHandler)

			// Wishlist routes
			wishlistRoutes := authRoutes.Group("/wishlist")
			{
				wishlistRoutes.GET("", deps.WishlistHandler.ListWishlistHandler)
				wishlistRoutes.POST("/:destinationID", deps.WishlistHandler.AddWishlistHandler)
				wishlistRoutes.DELETE("/:destinationID", deps.WishlistHandler.RemoveWishlistHandler)
			}

			// User routes
			userRoutes := authRoutes.Group("/users")
			{
				userRoutes.GET("/me", deps.UserHandler.GetMeHandler)
				userRoutes.PUT("/me", deps.UserHandler.UpdateMeHandler)
			}

			// Preference categories (read-only for travelers)
			authRoutes.GET("/preferences", deps.UserHandler.ListPreferenceOptionsHandler)

			// Admin routes
			adminRoutes := authRoutes.Group("/admin")
			adminRoutes.Use(middleware.AdminRequired(deps.UserStore))
			{
				adminRoutes.POST("/destinations", deps.DestinationHandler.CreateDestinationHandler)
				adminRoutes.POST("/destinations/import", deps.DestinationHandler.ImportDestinationsHandler)
				adminRoutes.PUT("/destinations/:id", deps.DestinationHandler.UpdateDestinationHandler)
				adminRoutes.DELETE("/destinations/:id", deps.DestinationHandler.DeleteDestinationHandler)
				adminRoutes.POST("/destinations/:id/images", deps.DestinationHandler.UploadDestinationImageHandler)

				adminRoutes.GET("/users", deps.AdminHandler.ListUsersHandler)
				adminRoutes.PUT("/users/:id/role", deps.AdminHandler.SetUserRoleHandler)
				adminRoutes.DELETE("/users/:id", deps.AdminHandler.DeleteUserHandler)

				adminRoutes.POST("/preferences", deps.AdminHandler.CreatePreferenceOptionHandler)
				adminRoutes.DELETE("/preferences/:id", deps.AdminHandler.DeletePreferenceOptionHandler)
			}
		}
	}

	return r
}
