package settings

import (
	"context"
	"sort"
	"strings"

	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

type UpdateRequest struct {
	CompanyName            *string
	CompanyEmail           *string
	CompanyPhone           *string
	CompanyAddress         *string
	VATPercentage          *decimal.Decimal
	Currency               *string
	WorkingDays            *[]int
	TimeSlots              *[]string
	DefaultBookingDuration *int
	PickupTime             *string
	PickupBlockedHours     *int
}

type Service interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, req UpdateRequest) (*Settings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		if strings.TrimSpace(*req.CompanyName) == "" {
			return nil, ErrCompanyNameMissing
		}
		current.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	if req.CompanyEmail != nil {
		current.CompanyEmail = req.CompanyEmail
	}
	if req.CompanyPhone != nil {
		current.CompanyPhone = req.CompanyPhone
	}
	if req.CompanyAddress != nil {
		current.CompanyAddress = req.CompanyAddress
	}
	if req.VATPercentage != nil {
		if req.VATPercentage.IsNegative() {
			return nil, ErrInvalidVAT
		}
		current.VATPercentage = *req.VATPercentage
	}
	if req.Currency != nil && strings.TrimSpace(*req.Currency) != "" {
		current.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if req.WorkingDays != nil {
		days, err := normalizeWorkingDays(*req.WorkingDays)
		if err != nil {
			return nil, err
		}
		current.WorkingDays = days
	}
	if req.TimeSlots != nil {
		slots, err := normalizeTimeSlots(*req.TimeSlots)
		if err != nil {
			return nil, err
		}
		current.TimeSlots = slots
	}
	if req.DefaultBookingDuration != nil {
		if *req.DefaultBookingDuration < 1 {
			return nil, ErrInvalidDuration
		}
		current.DefaultBookingDuration = *req.DefaultBookingDuration
	}
	if req.PickupTime != nil {
		if *req.PickupTime != "" && !timeutil.IsClock(*req.PickupTime) {
			return nil, ErrInvalidTimeSlot
		}
		current.PickupTime = req.PickupTime
	}
	if req.PickupBlockedHours != nil && *req.PickupBlockedHours >= 0 {
		current.PickupBlockedHours = *req.PickupBlockedHours
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// normalizeWorkingDays deduplicates and sorts the weekday set.
func normalizeWorkingDays(days []int) ([]int, error) {
	seen := make(map[int]bool, len(days))
	var out []int
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, ErrInvalidWorkingDay
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out, nil
}

// normalizeTimeSlots validates HH:MM values and keeps them sorted, matching
// the order the booking grid renders them in.
func normalizeTimeSlots(slots []string) ([]string, error) {
	seen := make(map[string]bool, len(slots))
	var out []string
	for _, slot := range slots {
		trimmed := strings.TrimSpace(slot)
		if !timeutil.IsClock(trimmed) {
			return nil, ErrInvalidTimeSlot
		}
		if !seen[trimmed] {
			seen[trimmed] = true
			out = append(out, trimmed)
		}
	}
	sort.Strings(out)
	return out, nil
}
