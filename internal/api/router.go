package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/freelancehub/job-board/docs"
	"github.com/freelancehub/job-board/internal/api/handler"
	"github.com/freelancehub/job-board/internal/api/middleware"
	"github.com/freelancehub/job-board/internal/core/service"
	mongodb "github.com/freelancehub/job-board/internal/infrastructure/db/mongo"
	redisdb "github.com/freelancehub/job-board/internal/infrastructure/db/redis"
)

const healthPingTimeout = 3 * time.Second

// Options carries everything the router needs to assemble its dependencies.
// Redis is optional: a nil client disables the job-listing cache.
type Options struct {
	Client    *mongo.Client
	DB        *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	ClientURL string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{opts.ClientURL},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.DB)
	authService := service.NewAuthService(userRepo, opts.JWTSecret, 7*24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	var cache service.ListingCache
	if opts.Redis != nil {
		cache = redisdb.NewListingCache(opts.Redis)
	}
	jobRepo := mongodb.NewJobRepository(opts.DB)
	jobService := service.NewJobService(jobRepo, cache, opts.Logger)
	jobHandler := handler.NewJobHandler(jobService)

	healthHandler := handler.NewHealthHandler(handler.PingerFunc(func(ctx context.Context) error {
		return mongodb.Ping(ctx, opts.Client, healthPingTimeout)
	}))

	auth := middleware.Auth(opts.JWTSecret)

	// --- Routes ---
	e.GET("/", handler.NewRootHandler().Index)
	e.GET("/api/health", healthHandler.Check)

	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// The listing is intentionally public; posting requires a token.
	e.GET("/api/jobs", jobHandler.List)
	e.POST("/api/jobs", jobHandler.Create, auth)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
