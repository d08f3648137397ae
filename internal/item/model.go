package item

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/apperror"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "item not found")
	ErrEmptyName     = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidPrice  = apperror.New(http.StatusBadRequest, "price per day must not be negative")
	ErrInvalidStock  = apperror.New(http.StatusBadRequest, "stock quantity must be at least 1")
	ErrInvalidImage  = apperror.New(http.StatusBadRequest, "uploaded file is not a valid image")
	ErrImageTooLarge = apperror.New(http.StatusBadRequest, "uploaded image is too large")
)

// Item represents a rentable unit of the catalog (e.g. a bouncy castle,
// a beer table set).
type Item struct {
	ID            string
	Name          string
	Description   *string
	PricePerDay   decimal.Decimal
	Category      string
	Available     bool
	StockQuantity int
	ImageURL      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines parameters for listing items.
type Filter struct {
	Category      string
	AvailableOnly bool
	Page          int
	PageSize      int
}
