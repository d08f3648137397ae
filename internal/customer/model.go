package customer

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/apperror"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "customer not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "customer name is required")
	ErrInvalidEmail = apperror.New(http.StatusBadRequest, "invalid email address")
	ErrEmailInUse   = apperror.New(http.StatusConflict, "email already belongs to another customer")
)

// Customer is a person who has placed at least one booking. Customers are
// keyed by email: a repeat booking under the same email updates the existing
// record in place.
type Customer struct {
	ID         string
	Name       string
	Email      string
	Phone      *string
	Address    *string
	TotalSpent decimal.Decimal
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter defines parameters for listing customers.
type Filter struct {
	Search   string // matches name or email
	Page     int
	PageSize int
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims spaces and lowercases the email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email looks like a deliverable address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(NormalizeEmail(email))
}
