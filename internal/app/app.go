package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"academy/internal/config"
	"academy/internal/database"
	"academy/internal/domain/admin"
	"academy/internal/domain/campaign"
	"academy/internal/domain/inquiry"
	"academy/internal/middleware"
	"academy/internal/pkg/jwt"
	"academy/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Models lists every table the server owns.
func Models() []interface{} {
	return []interface{}{
		&admin.AdminUser{},
		&campaign.Campaign{},
		&inquiry.Inquiry{},
	}
}

// App holds the wired services behind the HTTP router.
type App struct {
	DB       *gorm.DB
	JWT      *jwt.Service
	Admins   *admin.Service
	Campaign *campaign.Service
	Inquiry  *inquiry.Service

	corsOrigins []string
	startedAt   time.Time
}

// New wires repositories and services on top of an open database.
func New(db *gorm.DB, jwtService *jwt.Service, corsOrigins []string) *App {
	return &App{
		DB:          db,
		JWT:         jwtService,
		Admins:      admin.NewService(admin.NewAdminRepository(db), jwtService),
		Campaign:    campaign.NewService(campaign.NewRepository(db)),
		Inquiry:     inquiry.NewService(inquiry.NewRepository(db)),
		corsOrigins: corsOrigins,
		startedAt:   time.Now(),
	}
}

// Open connects to the configured database, migrates it and wires the app.
func Open(cfg *config.Config) (*App, error) {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db, Models()...); err != nil {
		return nil, err
	}

	return New(db, jwt.New(cfg.JWTSecret, jwt.SessionTTL), cfg.CORSOrigins), nil
}

// BootstrapAdmin creates the configured admin account when it is missing.
func (a *App) BootstrapAdmin(ctx context.Context, b config.BootstrapConfig) error {
	if !b.Enabled() {
		return nil
	}

	user, created, err := a.Admins.Bootstrap(ctx, admin.BootstrapInput{
		Username: b.Username,
		Password: b.Password,
		Role:     admin.Role(b.Role),
	})
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		log.Printf("admin_bootstrapped username=%s role=%s", user.Username, user.Role)
	}
	return nil
}

// Router builds the gin engine with every route mounted.
func (a *App) Router() *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORS(a.corsOrigins))
	r.Use(middleware.ErrorLogger())
	r.Use(gin.Logger())

	health := &healthHandler{db: a.DB, startedAt: a.startedAt}
	r.GET("/health", health.handle)

	authHandler := admin.NewAuthHandler(a.Admins)
	managementHandler := admin.NewManagementHandler(a.Admins)
	campaignHandler := campaign.NewHandler(a.Campaign)
	inquiryHandler := inquiry.NewHandler(a.Inquiry)

	// public
	authHandler.RegisterPublicRoutes(r)
	inquiryHandler.RegisterPublicRoutes(r)
	campaignHandler.RegisterPublicRoutes(r)

	protected := r.Group("/")
	protected.Use(middleware.JWTAuth(a.JWT))
	{
		authHandler.RegisterProtectedRoutes(protected)

		adminGroup := protected.Group("/admin")
		managementHandler.RegisterAdminRoutes(adminGroup)
		inquiryHandler.RegisterAdminRoutes(adminGroup)
		campaignHandler.RegisterAdminRoutes(adminGroup)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	return r
}

// Server wraps the router in an http.Server with conservative timeouts.
func (a *App) Server(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Close releases the database handle.
func (a *App) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
