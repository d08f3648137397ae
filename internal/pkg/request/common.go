package request

import (
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/timeutil"
)

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Validate performs custom validation for ByIDRequest.
func (r *ByIDRequest) Validate() error {
	return nil
}

// ListParams holds the pagination parameters shared by list endpoints.
type ListParams struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// ParseDate parses a calendar date in YYYY-MM-DD form as a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(timeutil.DateLayout, s, time.UTC)
}
