package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/meridian-trust/staff-portal/internal/api/handler"
	"github.com/meridian-trust/staff-portal/internal/api/middleware"
	"github.com/meridian-trust/staff-portal/internal/core/domain"
	"github.com/meridian-trust/staff-portal/internal/core/service"
	mongodb "github.com/meridian-trust/staff-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/meridian-trust/staff-portal/internal/infrastructure/db/redis"
	"github.com/meridian-trust/staff-portal/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	credentials := mongodb.NewCredentialRepository(db)
	audit := mongodb.NewAuditRepository(db)
	staff := mongodb.NewStaffRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.SessionTTL)

	authenticator := service.NewAuthenticator(credentials, audit, log)
	sessions := service.NewSessionManager(sessionStore)
	gate := service.NewGate(sessions)
	directory := service.NewDirectoryService(staff)

	authHandler := handler.NewAuthHandler(authenticator, sessions)
	dashboardHandler := handler.NewDashboardHandler(audit)
	directoryHandler := handler.NewDirectoryHandler(directory)
	adminHandler := handler.NewAdminHandler(credentials, audit, sessions)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Internal pages: any authenticated role ---
	internal := e.Group("/internal", middleware.RequireSession(gate))
	internal.GET("/dashboard", dashboardHandler.Show)
	internal.GET("/directory", directoryHandler.Search)

	// --- Admin console: logged in AND role=admin, checked independently ---
	admin := e.Group("/admin",
		middleware.RequireSession(gate),
		middleware.RequireRole(gate, domain.RoleAdmin),
	)
	admin.GET("/overview", adminHandler.Overview)
	admin.GET("/users", adminHandler.Users)
	admin.GET("/logs", adminHandler.Logs)
	admin.GET("/uploads", uploadHandler.List)
	admin.POST("/uploads", uploadHandler.Upload)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
