package settings

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/apperror"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "settings not configured")
	ErrInvalidWorkingDay  = apperror.New(http.StatusBadRequest, "working days must be weekday numbers 0-6")
	ErrInvalidTimeSlot    = apperror.New(http.StatusBadRequest, "time slots must be HH:MM values")
	ErrInvalidDuration    = apperror.New(http.StatusBadRequest, "default booking duration must be at least 1 day")
	ErrInvalidVAT         = apperror.New(http.StatusBadRequest, "vat percentage must not be negative")
	ErrCompanyNameMissing = apperror.New(http.StatusBadRequest, "company name is required")
)

// Settings is the singleton business configuration row. Working days are
// weekday numbers with 0 = Sunday; time slots are ordered "HH:MM" strings.
type Settings struct {
	ID                     string
	CompanyName            string
	CompanyEmail           *string
	CompanyPhone           *string
	CompanyAddress         *string
	VATPercentage          decimal.Decimal
	Currency               string
	WorkingDays            []int
	TimeSlots              []string
	DefaultBookingDuration int
	PickupTime             *string
	PickupBlockedHours     int
	UpdatedAt              time.Time
}

// IsWorkingDay reports whether t falls on one of the configured working days.
func (s *Settings) IsWorkingDay(t time.Time) bool {
	day := int(t.UTC().Weekday())
	for _, d := range s.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}
