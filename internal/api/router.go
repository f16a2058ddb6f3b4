package api

import (
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bazarhub/marketplace-api/docs"
	"github.com/bazarhub/marketplace-api/internal/api/handler"
	appmw "github.com/bazarhub/marketplace-api/internal/api/middleware"
	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/service"
	"github.com/bazarhub/marketplace-api/internal/infrastructure/config"
	mongorepo "github.com/bazarhub/marketplace-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/bazarhub/marketplace-api/internal/infrastructure/db/redis"
	"github.com/bazarhub/marketplace-api/internal/infrastructure/mail"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is passed in because its worker lifecycle belongs to main.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, recorder service.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.SessionSecret))))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	adminRepo := mongorepo.NewAdminRepository(db)
	auditRepo := mongorepo.NewAuditRepository(db)
	contactRepo := mongorepo.NewContactRepository(db)
	standings := redisinfra.NewStandingCache(rdb)

	var mailer service.Mailer
	if cfg.Mail.SendGridAPIKey != "" && cfg.Mail.OperatorTo != "" {
		mailer = mail.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.From, cfg.Mail.OperatorTo)
	}

	userService := service.NewUserService(userRepo, standings, cfg.JWTSecret, 24*time.Hour, log)
	adminService := service.NewAdminService(userRepo, adminRepo, auditRepo, recorder, standings, log)
	contactService := service.NewContactService(contactRepo, mailer, log)

	authHandler := handler.NewAuthHandler(userService)
	accountHandler := handler.NewAccountHandler(userService)
	marketHandler := handler.NewMarketplaceHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService)
	contactHandler := handler.NewContactHandler(contactService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.POST("/contact", contactHandler.Submit)

	// --- Session-guarded browser routes ---
	authed := e.Group("", appmw.RequireLogin())
	authed.GET("/profile", accountHandler.Get)
	authed.PUT("/profile", accountHandler.Update)
	authed.PUT("/profile/password", accountHandler.ChangePassword)
	authed.POST("/profile/upgrade", accountHandler.Upgrade)

	authed.POST("/listings", marketHandler.AddListing)
	authed.PUT("/listings/:id", marketHandler.UpdateListing)
	authed.DELETE("/listings/:id", marketHandler.RemoveListing)

	authed.POST("/bookmarks", marketHandler.AddBookmark)
	authed.DELETE("/bookmarks/:productId", marketHandler.RemoveBookmark)

	authed.POST("/cart", marketHandler.AddToCart)
	authed.PUT("/cart/:productId", marketHandler.SetCartQuantity)
	authed.DELETE("/cart/:productId", marketHandler.RemoveFromCart)

	authed.POST("/messages", marketHandler.SendMessage)

	// --- Admin routes: login guard first, then the role guard ---
	admin := e.Group("/admin", appmw.RequireLogin(), appmw.RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users/:userId/promote", adminHandler.Promote)
	admin.PUT("/users/:userId/client-status", adminHandler.SetClientStatus)
	admin.PUT("/users/:userId/suspend", adminHandler.SetSuspended)
	admin.POST("/users/:userId/ban", adminHandler.BanUser)
	admin.DELETE("/users/:userId/ban", adminHandler.UnbanUser)
	admin.PUT("/admins/:adminId/permissions", adminHandler.SetPermissions)
	admin.GET("/audit-logs", adminHandler.ListAuditLogs)
	admin.GET("/contacts", contactHandler.List)

	// --- Token API for non-browser clients, same handlers behind JWT ---
	v1 := e.Group("/v1", appmw.APIAuth(cfg.JWTSecret))
	v1.GET("/profile", accountHandler.Get)
	v1.PUT("/profile", accountHandler.Update)
	v1.POST("/listings", marketHandler.AddListing)
	v1.PUT("/listings/:id", marketHandler.UpdateListing)
	v1.DELETE("/listings/:id", marketHandler.RemoveListing)
	v1.POST("/messages", marketHandler.SendMessage)

	v1admin := v1.Group("/admin", appmw.RBAC(domain.RoleAdmin))
	v1admin.GET("/users", adminHandler.ListUsers)
	v1admin.GET("/audit-logs", adminHandler.ListAuditLogs)

	// --- Operational endpoints ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	return e
}
