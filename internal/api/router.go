package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/nefroclinica/clinic-system/docs"
	"github.com/nefroclinica/clinic-system/internal/api/handler"
	"github.com/nefroclinica/clinic-system/internal/api/middleware"
	"github.com/nefroclinica/clinic-system/internal/core/service"
	"github.com/nefroclinica/clinic-system/internal/infrastructure/config"
	mongodb "github.com/nefroclinica/clinic-system/internal/infrastructure/db/mongo"
	"github.com/nefroclinica/clinic-system/internal/infrastructure/db/postgres"
	redisdb "github.com/nefroclinica/clinic-system/internal/infrastructure/db/redis"
	"github.com/nefroclinica/clinic-system/internal/infrastructure/mail"
	"github.com/nefroclinica/clinic-system/internal/infrastructure/qr"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The identity filter and access policy run globally, in that order, before
// any handler.
func NewRouter(pg *pgxpool.Pool, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	codec, err := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}

	userRepo := postgres.NewUserRepository(pg)
	patientRepo := mongodb.NewPatientRepository(db)
	notifier := mail.NewMailer(cfg.SMTP, log)
	encoder := qr.NewEncoder()
	dedup := redisdb.NewQRDedup(rdb)

	authService := service.NewAuthService(userRepo, codec, notifier, log)
	userService := service.NewUserService(userRepo, notifier, log)
	patientService := service.NewPatientService(patientRepo, encoder, notifier, dedup, cfg.FrontendBaseURL, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	patientHandler := handler.NewPatientHandler(patientService, log)
	qrHandler := handler.NewQRHandler(patientRepo, encoder)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.Origins,
		AllowMethods: cfg.CORS.Methods,
		AllowHeaders: cfg.CORS.Headers,
	}))
	e.Use(echoprometheus.NewMiddleware("clinic"))
	e.Use(middleware.Identity(codec, userRepo))
	e.Use(middleware.Policy(middleware.DefaultRules))

	// --- Auth routes (public by policy) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Patients ---
	e.POST("/api/pacientes", patientHandler.Create)
	e.GET("/api/pacientes", patientHandler.List)
	e.GET("/api/pacientes/:id", patientHandler.Get)
	e.PUT("/api/pacientes/:id", patientHandler.Update)
	e.DELETE("/api/pacientes/:id", patientHandler.Delete)

	// --- QR ---
	e.GET("/api/qr/:id", qrHandler.Get)

	// --- User administration (admin only by policy) ---
	e.GET("/api/usuarios", userHandler.List)
	e.GET("/api/usuarios/email/:email", userHandler.GetByEmail)
	e.POST("/api/usuarios", userHandler.Create)
	e.PUT("/api/usuarios/:id", userHandler.Update)
	e.DELETE("/api/usuarios/:id", userHandler.Delete)
	e.PUT("/api/usuarios/:id/password", userHandler.ChangePassword)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pg, db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
