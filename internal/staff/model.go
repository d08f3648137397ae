package staff

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "staff account not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInactiveAccount    = apperror.New(http.StatusForbidden, "account is inactive")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password is too short")
)

// Account is a back-office login. Customers never have accounts; they book
// by email only.
type Account struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	IsActive     bool
	IsAdmin      bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

// Filter defines options for listing staff accounts.
type Filter struct {
	Email    string
	IsActive *bool // nil means no filter

	Page     int
	PageSize int
}
