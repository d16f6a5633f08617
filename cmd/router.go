package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "github.com/studyloop/backend/docs"
	"github.com/studyloop/backend/internal/handlers"
	"github.com/studyloop/backend/internal/repositories"
	"github.com/studyloop/backend/internal/services"
	"github.com/studyloop/backend/libs/auth/middleware"
	"github.com/studyloop/backend/libs/auth/service"
	"github.com/studyloop/backend/libs/config"
	loggerMiddleware "github.com/studyloop/backend/libs/logger/middleware"
	sharedMiddleware "github.com/studyloop/backend/libs/middlewares"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// maxRequestSize bounds JSON request bodies
const maxRequestSize = 1 << 20 // 1MB

// newRouter wires repositories, services and handlers into the HTTP router
func newRouter(cfg *config.Config, db *sql.DB, registry *prometheus.Registry, logger *zap.Logger) http.Handler {
	// Initialize JWT token generator
	tokenGenerator := service.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger)
	subjectRepo := repositories.NewSubjectRepository(db, logger)
	historyRepo := repositories.NewHistoryRepository(db, logger)
	reviewRepo := repositories.NewReviewRepository(db, logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenGenerator, cfg.Security.BcryptCost, logger)
	subjectService := services.NewSubjectService(subjectRepo, logger)
	historyService := services.NewHistoryService(historyRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	subjectHandler := handlers.NewSubjectHandler(subjectService, logger)
	historyHandler := handlers.NewHistoryHandler(historyService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	healthHandler := handlers.NewHealthHandler(db, logger)

	metrics := sharedMiddleware.NewMetrics(registry)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(sharedMiddleware.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(logger))
	r.Use(sharedMiddleware.RecoveryMiddleware(logger))
	r.Use(sharedMiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Security.RateLimitPerMinute, time.Minute))
	r.Use(sharedMiddleware.RequestSizeLimitMiddleware(maxRequestSize))
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(metrics.Middleware)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	healthHandler.RegisterRoutes(r)

	// Public routes
	authHandler.RegisterRoutes(r)

	// Routes that require a bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(tokenGenerator))
		subjectHandler.RegisterRoutes(r)
		reviewHandler.RegisterRoutes(r)
		historyHandler.RegisterRoutes(r)
	})

	// Browser front end
	if cfg.PublicDir != "" {
		handlers.NewStaticHandler(cfg.PublicDir).RegisterRoutes(r)
	}

	return r
}
