package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nekogravitycat/rental-booking-backend/internal/api"
	"github.com/nekogravitycat/rental-booking-backend/internal/auth"
	"github.com/nekogravitycat/rental-booking-backend/internal/booking"
	"github.com/nekogravitycat/rental-booking-backend/internal/customer"
	"github.com/nekogravitycat/rental-booking-backend/internal/item"
	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/storage"
	"github.com/nekogravitycat/rental-booking-backend/internal/settings"
	"github.com/nekogravitycat/rental-booking-backend/internal/staff"
	"github.com/nekogravitycat/rental-booking-backend/internal/stats"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	UploadDir    string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	imageProcessor := storage.NewImageProcessor()

	// Staff Module
	staffRepo := staff.NewPgxRepository(cfg.DBPool)
	staffService := staff.NewService(staffRepo, passwordHasher)

	// Settings Module
	settingsRepo := settings.NewPgxRepository(cfg.DBPool)
	settingsService := settings.NewService(settingsRepo)

	// Item Module
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, store, imageProcessor)

	// Customer Module
	customerRepo := customer.NewPgxRepository(cfg.DBPool)
	customerService := customer.NewService(customerRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, itemService, settingsService)

	// Stats Module
	statsRepo := stats.NewPgxRepository(cfg.DBPool)
	statsService := stats.NewService(statsRepo)

	// API Router Config
	routerParams := api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UploadDir:       cfg.UploadDir,
		StaffService:    staffService,
		ItemService:     itemService,
		CustomerService: customerService,
		BookingService:  bookingService,
		SettingsService: settingsService,
		StatsService:    statsService,
		JWTManager:      jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
