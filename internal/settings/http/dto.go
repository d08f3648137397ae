package http

import (
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/settings"
	"github.com/shopspring/decimal"
)

type SettingsResponse struct {
	CompanyName            string          `json:"company_name"`
	CompanyEmail           *string         `json:"company_email"`
	CompanyPhone           *string         `json:"company_phone"`
	CompanyAddress         *string         `json:"company_address"`
	VATPercentage          decimal.Decimal `json:"vat_percentage"`
	Currency               string          `json:"currency"`
	WorkingDays            []int           `json:"working_days"`
	TimeSlots              []string        `json:"time_slots"`
	DefaultBookingDuration int             `json:"default_booking_duration"`
	PickupTime             *string         `json:"pickup_time"`
	PickupBlockedHours     int             `json:"pickup_blocked_hours"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

func NewSettingsResponse(s *settings.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:            s.CompanyName,
		CompanyEmail:           s.CompanyEmail,
		CompanyPhone:           s.CompanyPhone,
		CompanyAddress:         s.CompanyAddress,
		VATPercentage:          s.VATPercentage,
		Currency:               s.Currency,
		WorkingDays:            s.WorkingDays,
		TimeSlots:              s.TimeSlots,
		DefaultBookingDuration: s.DefaultBookingDuration,
		PickupTime:             s.PickupTime,
		PickupBlockedHours:     s.PickupBlockedHours,
		UpdatedAt:              s.UpdatedAt,
	}
}

// PublicSettingsResponse is the subset exposed to the customer booking flow.
type PublicSettingsResponse struct {
	CompanyName            string          `json:"company_name"`
	Currency               string          `json:"currency"`
	VATPercentage          decimal.Decimal `json:"vat_percentage"`
	WorkingDays            []int           `json:"working_days"`
	TimeSlots              []string        `json:"time_slots"`
	DefaultBookingDuration int             `json:"default_booking_duration"`
}

func NewPublicSettingsResponse(s *settings.Settings) PublicSettingsResponse {
	return PublicSettingsResponse{
		CompanyName:            s.CompanyName,
		Currency:               s.Currency,
		VATPercentage:          s.VATPercentage,
		WorkingDays:            s.WorkingDays,
		TimeSlots:              s.TimeSlots,
		DefaultBookingDuration: s.DefaultBookingDuration,
	}
}

type UpdateSettingsBody struct {
	CompanyName            *string          `json:"company_name"`
	CompanyEmail           *string          `json:"company_email"`
	CompanyPhone           *string          `json:"company_phone"`
	CompanyAddress         *string          `json:"company_address"`
	VATPercentage          *decimal.Decimal `json:"vat_percentage"`
	Currency               *string          `json:"currency"`
	WorkingDays            *[]int           `json:"working_days"`
	TimeSlots              *[]string        `json:"time_slots"`
	DefaultBookingDuration *int             `json:"default_booking_duration"`
	PickupTime             *string          `json:"pickup_time"`
	PickupBlockedHours     *int             `json:"pickup_blocked_hours"`
}
