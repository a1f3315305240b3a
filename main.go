package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/supabase-community/supabase-go"

	"github.com/travelmate-app/travelmate-backend/config"
	"github.com/travelmate-app/travelmate-backend/db"
	"github.com/travelmate-app/travelmate-backend/handlers"
	"github.com/travelmate-app/travelmate-backend/internal/store/postgres"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/router"
	"github.com/travelmate-app/travelmate-backend/services"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Database
	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := db.Connect(ctx, cfg.Database.ConnString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis
	redisOptions := &redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}
	if cfg.Redis.UseTLS {
		redisOptions.TLSConfig = &tls.Config{
			ServerName: cfg.Redis.Address,
			MinVersion: tls.VersionTLS12,
		}
	}
	redisClient := redis.NewClient(redisOptions)
	defer redisClient.Close()

	// Supabase client for auth operations on the user's behalf
	supabaseClient, err := supabase.NewClient(
		cfg.ExternalServices.SupabaseURL,
		cfg.ExternalServices.SupabaseAnonKey,
		&supabase.ClientOptions{},
	)
	if err != nil {
		log.Fatalf("Failed to create Supabase client: %v", err)
	}

	// Stores
	destinationStore := postgres.NewDestinationStore(pool)
	planStore := postgres.NewTripPlanStore(pool)
	wishlistStore := postgres.NewWishlistStore(pool)
	userStore := postgres.NewUserStore(pool)
	preferenceStore := postgres.NewPreferenceStore(pool)

	// Metrics registry shared by HTTP middleware and service collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Services
	emailService := services.NewEmailServiceWithRegistry(
		&cfg.Email, cfg.ExternalServices.ResendAPIKey, registry)

	var imageService *services.ImageService
	if cfg.Storage.Bucket != "" {
		s3Client, err := services.NewS3Client(ctx, cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to create storage client: %v", err)
		}
		imageService = services.NewImageService(s3Client, cfg.Storage)
	}

	rateLimitService := services.NewRateLimitService(redisClient)
	planService := services.NewPlanService(planStore, destinationStore, emailService)
	recommendationService := services.NewRecommendationService(userStore, destinationStore)
	presenceService := services.NewPresenceService(redisClient, cfg.Presence)
	healthService := services.NewHealthService(pool, redisClient, cfg.Server.Version)
	supabaseAdmin := services.NewSupabaseService(services.SupabaseServiceConfig{
		IsEnabled:   cfg.ExternalServices.SupabaseServiceKey != "",
		SupabaseURL: cfg.ExternalServices.SupabaseURL,
		ServiceKey:  cfg.ExternalServices.SupabaseServiceKey,
	})

	// Handlers
	deps := router.Dependencies{
		Config:                cfg,
		RedisClient:           redisClient,
		UserStore:             userStore,
		PlanHandler:           handlers.NewPlanHandler(planService, cfg.ExternalServices.SupabaseJWTSecret),
		DestinationHandler:    handlers.NewDestinationHandler(destinationStore, imageService),
		RecommendationHandler: handlers.NewRecommendationHandler(recommendationService),
		WishlistHandler:       handlers.NewWishlistHandler(wishlistStore, destinationStore),
		UserHandler:           handlers.NewUserHandler(userStore, preferenceStore),
		AdminHandler:          handlers.NewAdminHandler(userStore, preferenceStore, supabaseAdmin),
		AuthHandler:           handlers.NewAuthHandler(supabaseClient, cfg),
		HealthHandler:         handlers.NewHealthHandler(healthService),
		PresenceHandler:       handlers.NewPresenceHandler(presenceService, rateLimitService, &cfg.Server, cfg.Presence),
		MetricsRegistry:       registry,
		Logger:                log,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.SetupRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
	}
	log.Info("Server exited")
}
