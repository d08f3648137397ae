package api

import (
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/staff"
)

// LoginRequest is the payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StaffResponse is the shape of staff account data returned by the API.
type StaffResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName *string    `json:"display_name,omitempty"`
	IsActive    bool       `json:"is_active"`
	IsAdmin     bool       `json:"is_admin"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LoginResponse is the response for POST /v1/auth/login.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	Staff       StaffResponse `json:"staff"`
}

// MeResponse is the response for GET /v1/me.
type MeResponse struct {
	Staff StaffResponse `json:"staff"`
}

// NewStaffResponse converts a staff.Account to the API response shape.
func NewStaffResponse(a *staff.Account) StaffResponse {
	var lastLoginAt *time.Time
	if a.LastLoginAt != nil {
		ll := *a.LastLoginAt
		lastLoginAt = &ll
	}

	return StaffResponse{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		IsActive:    a.IsActive,
		IsAdmin:     a.IsAdmin,
		LastLoginAt: lastLoginAt,
		CreatedAt:   a.CreatedAt,
	}
}
