package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/quickcart/commerce-api/internal/api/handler"
	"github.com/quickcart/commerce-api/internal/api/middleware"
	"github.com/quickcart/commerce-api/internal/core/ports"
	"github.com/quickcart/commerce-api/internal/core/service"
	"github.com/quickcart/commerce-api/internal/core/token"
	"github.com/quickcart/commerce-api/internal/infrastructure/db/postgres"
	redisdb "github.com/quickcart/commerce-api/internal/infrastructure/db/redis"
	"github.com/quickcart/commerce-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the catalog then runs without its read-through cache.
func NewRouter(db *gorm.DB, rdb *redis.Client, hasher ports.PasswordHasher, tokens *token.Manager, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)

	var cache service.ProductCache
	if rdb != nil {
		cache = redisdb.NewProductCache(rdb)
	}

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	authRequired := middleware.Auth(tokens)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/", authHandler.Register)
	auth.POST("/token", authHandler.Token)
	auth.GET("/read_current_user", authHandler.ReadCurrentUser, authRequired)

	// --- Catalog routes ---
	products := e.Group("/products")
	products.GET("/", catalogHandler.List)
	products.POST("/create", catalogHandler.Create, authRequired, middleware.RequireSeller())
	products.GET("/detail/:product_slug", catalogHandler.Detail)
	products.PUT("/detail/:product_slug", catalogHandler.Update, authRequired)
	products.DELETE("/delete/:product_id", catalogHandler.Delete, authRequired)
	products.GET("/:category_slug", catalogHandler.ByCategory)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
