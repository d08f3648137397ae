package booking

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "end date must not be before start date")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrNoItems          = apperror.New(http.StatusBadRequest, "select at least one item")
	ErrInvalidQuantity  = apperror.New(http.StatusBadRequest, "quantity must be at least 1")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrClosedDay        = apperror.New(http.StatusBadRequest, "selected date is not a working day")
	ErrItemUnavailable  = apperror.New(http.StatusBadRequest, "item is not available for booking")
	ErrCustomerRequired = apperror.New(http.StatusBadRequest, "customer name and email are required")
)

// ConflictError reports which item made a proposed booking impossible.
type ConflictError struct {
	ItemName string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%q is already booked in the selected period", e.ItemName)
}

// StockError reports a quantity request beyond an item's stock.
type StockError struct {
	ItemName string
	Stock    int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("only %d of %q in stock", e.Stock, e.ItemName)
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is one of the three booking states.
func ValidStatus(s Status) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// Booking spans an inclusive date range, optionally narrowed to a time-of-day
// window. Bookings without times block their whole days.
type Booking struct {
	ID            string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	StartDate     time.Time
	EndDate       time.Time
	StartTime     *string // "HH:MM", nil = whole day
	EndTime       *string
	TotalPrice    decimal.Decimal
	Status        Status
	Lines         []Line
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Line associates one item with a quantity inside a booking.
type Line struct {
	ID       string
	ItemID   string
	ItemName string
	Quantity int
}

// CoversDate reports whether the booking's date range includes the given day.
func (b *Booking) CoversDate(date time.Time) bool {
	return timeutil.DateWithin(date, b.StartDate, b.EndDate)
}

// TimeWindow returns the booking's time-of-day interval in minutes since
// midnight as the half-open range [start, end). Bookings without explicit
// times cover the whole day.
func (b *Booking) TimeWindow() (startMin, endMin int) {
	if b.StartTime == nil || b.EndTime == nil {
		return 0, timeutil.MinutesPerDay
	}
	start, err1 := timeutil.ParseClock(*b.StartTime)
	end, err2 := timeutil.ParseClock(*b.EndTime)
	if err1 != nil || err2 != nil {
		return 0, timeutil.MinutesPerDay
	}
	return start, end
}

// Filter defines parameters for listing bookings.
type Filter struct {
	CustomerID string
	ItemID     string
	Status     string
	// Overlap window: bookings whose date range intersects [From, To].
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
