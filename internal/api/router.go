package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/threadmarket/marketplace-api/docs"
	"github.com/threadmarket/marketplace-api/internal/api/handler"
	"github.com/threadmarket/marketplace-api/internal/api/middleware"
	"github.com/threadmarket/marketplace-api/internal/core/auth"
	"github.com/threadmarket/marketplace-api/internal/core/domain"
	"github.com/threadmarket/marketplace-api/internal/core/service"
	mongodb "github.com/threadmarket/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/threadmarket/marketplace-api/internal/infrastructure/db/redis"
	"github.com/threadmarket/marketplace-api/internal/infrastructure/storage"
	"github.com/threadmarket/marketplace-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	tokens := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens, log)
	authHandler := handler.NewAuthHandler(authService)

	photoStore, err := storage.NewDiskStore(cfg.Uploads.Dir)
	if err != nil {
		return nil, err
	}
	catalogCache := redisdb.NewCatalogCache(rdb, log)
	productRepo := mongodb.NewProductRepository(db)
	productService := service.NewProductService(productRepo, photoStore, catalogCache, log)
	productHandler := handler.NewProductHandler(productService, handler.UploadLimits{
		MaxPhotos:     cfg.Uploads.MaxPhotos,
		MaxPhotoBytes: cfg.Uploads.MaxPhotoBytes,
	})

	authGate := middleware.Auth(tokens, log)
	sellerOnly := middleware.RequireRole(domain.RoleSeller)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/profile", authHandler.Profile, authGate)
	e.GET("/sellers", authHandler.Sellers)

	// --- Catalog routes ---
	e.POST("/products", productHandler.Create, authGate, sellerOnly)
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.GET("/products/categories/:category", productHandler.ListByCategory)
	e.Static("/uploads", cfg.Uploads.Dir)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
