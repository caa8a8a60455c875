package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/ratings-service/internal/api/handlers"
	"github.com/princeprakhar/ratings-service/internal/api/middleware"
	"github.com/princeprakhar/ratings-service/internal/config"
	"github.com/princeprakhar/ratings-service/internal/database"
	"github.com/princeprakhar/ratings-service/internal/repository"
	"github.com/princeprakhar/ratings-service/internal/services"
	"github.com/princeprakhar/ratings-service/pkg/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	ratingRepo := repository.NewRatingRepository(db)
	ping := func(ctx context.Context) error { return database.Ping(ctx, db) }

	Register(router, ratingRepo, ping, cfg)
}

// Register wires middleware, services and handlers onto router for the given
// repository. ping may be nil.
func Register(router *gin.Engine, ratingRepo repository.RatingRepository, ping handlers.Pinger, cfg *config.Config) {
	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	router.Use(middleware.RateLimitMiddleware(cfg))

	var filter *services.ContentFilter
	if cfg.ProfanityFilterEnabled {
		filter = services.NewContentFilter(cfg.ProfanityWords)
		if !filter.Enabled() {
			logger.Warn("PROFANITY_FILTER_ENABLED is set but PROFANITY_WORDS is empty; filter is inactive")
		}
	}

	if cfg.DefaultPageSize > cfg.MaxPageSize {
		logger.WithFields(logrus.Fields{
			"default_page_size": cfg.DefaultPageSize,
			"max_page_size":     cfg.MaxPageSize,
		}).Warn("DEFAULT_PAGE_SIZE exceeds MAX_PAGE_SIZE; clamping default to the ceiling")
	}

	// Initialize services
	ratingService := services.NewRatingService(ratingRepo, services.RatingServiceOptions{
		DefaultPageSize:      cfg.DefaultPageSize,
		MaxPageSize:          cfg.MaxPageSize,
		QueryTimeout:         cfg.QueryTimeout,
		AggregateConcurrency: cfg.AggregateConcurrency,
		Filter:               filter,
	})

	// Initialize handlers
	ratingHandler := handlers.NewRatingHandler(ratingService)
	healthHandler := handlers.NewHealthHandler(ping)

	router.GET("/health", healthHandler.Check)
	ratingHandler.RegisterRoutes(router)

	logger.Info("Routes initialized successfully")
}
