package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/Aqil0709/store-rating-fullstack/docs"
	"github.com/Aqil0709/store-rating-fullstack/internal/api/handler"
	"github.com/Aqil0709/store-rating-fullstack/internal/api/middleware"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/service"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/token"
	"github.com/Aqil0709/store-rating-fullstack/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// guard may be nil when the login throttle is disabled.
func NewRouter(db *sql.DB, rdb *redis.Client, issuer *token.Issuer, guard ports.LoginGuard, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("store_rating"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	storeRepo := sqlite.NewStoreRepository(db)
	ratingRepo := sqlite.NewRatingRepository(db)

	authService := service.NewAuthService(userRepo, issuer, guard, log)
	storeService := service.NewStoreService(storeRepo, ratingRepo, log)
	ratingService := service.NewRatingService(storeRepo, ratingRepo, log)
	adminService := service.NewAdminService(userRepo, storeRepo, ratingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	storeHandler := handler.NewStoreHandler(storeService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	ownerHandler := handler.NewOwnerHandler(storeService)
	adminHandler := handler.NewAdminHandler(adminService)

	authed := middleware.Auth(issuer)

	// --- Auth routes (rate limited per client IP) ---
	auth := e.Group("/auth", middleware.RateLimitByIP(middleware.AuthLimit))
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	e.PUT("/users/password", authHandler.UpdatePassword, authed)
	e.GET("/stores", storeHandler.List, authed)
	e.POST("/ratings", ratingHandler.Submit, authed, middleware.RequireRoles(domain.RoleUser))
	e.GET("/owner/dashboard", ownerHandler.Dashboard, authed, middleware.RequireRoles(domain.RoleOwner))

	admin := e.Group("/admin", authed, middleware.RequireRoles(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.POST("/users", adminHandler.CreateUser)
	admin.POST("/stores", adminHandler.CreateStore)

	// --- Health probes, metrics, API docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
