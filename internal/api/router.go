package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/rental-booking-backend/internal/auth"
	"github.com/nekogravitycat/rental-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/rental-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/rental-booking-backend/internal/customer"
	customerHttp "github.com/nekogravitycat/rental-booking-backend/internal/customer/http"
	"github.com/nekogravitycat/rental-booking-backend/internal/item"
	itemHttp "github.com/nekogravitycat/rental-booking-backend/internal/item/http"
	"github.com/nekogravitycat/rental-booking-backend/internal/settings"
	settingsHttp "github.com/nekogravitycat/rental-booking-backend/internal/settings/http"
	"github.com/nekogravitycat/rental-booking-backend/internal/staff"
	"github.com/nekogravitycat/rental-booking-backend/internal/stats"
	statsHttp "github.com/nekogravitycat/rental-booking-backend/internal/stats/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	UploadDir    string

	StaffService    staff.Service
	ItemService     item.Service
	CustomerService customer.Service
	BookingService  booking.Service
	SettingsService settings.Service
	StatsService    stats.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers the public
// storefront routes and the authenticated back-office routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = []string{cfg.ProdOrigins}
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173", // storefront dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Uploaded item photos are served directly from disk.
	r.Static("/uploads", cfg.UploadDir)

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated staff member is an admin.
	adminMiddleware := RequireAdmin(cfg.StaffService)

	authHandler := NewAuthHandler(cfg.StaffService, cfg.JWTManager)
	staffHandler := NewStaffHandler(cfg.StaffService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	customerHandler := customerHttp.NewHandler(cfg.CustomerService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	settingsHandler := settingsHttp.NewHandler(cfg.SettingsService)
	statsHandler := statsHttp.NewHandler(cfg.StatsService)

	// Public storefront routes under /v1; staff routes under /v1/admin.
	v1 := r.Group("/v1")
	admin := v1.Group("/admin", authMiddleware)
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/me", authMiddleware, authHandler.Me)

		itemHttp.RegisterRoutes(v1, admin, itemHandler)
		bookingHttp.RegisterRoutes(v1, admin, bookingHandler)
		customerHttp.RegisterRoutes(admin, customerHandler)
		settingsHttp.RegisterRoutes(v1, admin, settingsHandler)
		statsHttp.RegisterRoutes(admin, statsHandler)

		// Staff account management requires admin privileges.
		staffGroup := admin.Group("/staff", adminMiddleware)
		staffGroup.GET("", staffHandler.List)
		staffGroup.POST("", staffHandler.Register)
		staffGroup.PATCH("/:id/active", staffHandler.SetActive)
		staffGroup.DELETE("/:id", staffHandler.Delete)
	}

	return r
}
