package booking

import (
	"context"
	"strings"
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/customer"
	"github.com/nekogravitycat/rental-booking-backend/internal/item"
	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/timeutil"
	"github.com/nekogravitycat/rental-booking-backend/internal/settings"
)

// CreateRequest is the public booking submission.
type CreateRequest struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	CustomerAddress *string
	StartDate       time.Time
	EndDate         time.Time
	StartTime       *string
	EndTime         *string
	Lines           []LineRequest
}

type LineRequest struct {
	ItemID   string
	Quantity int
}

type Service interface {
	// Create validates and submits a booking. New bookings always start
	// pending; the total is priced server-side from current item prices.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error)
	Delete(ctx context.Context, id string) error

	// DateAvailability resolves the slot grid for one date, optionally
	// scoped to bookings that reference one item.
	DateAvailability(ctx context.Context, date time.Time, itemID string) (DateAvailability, error)

	// MonthAvailability resolves the slot grid for every date of a month
	// with a single booking query.
	MonthAvailability(ctx context.Context, year int, month time.Month, itemID string) ([]DateAvailability, error)

	// AvailableStock reports how many units of an item remain bookable on
	// the given date.
	AvailableStock(ctx context.Context, itemID string, date time.Time) (int, error)
}

type service struct {
	repo     Repository
	items    item.Service
	settings settings.Service
}

func NewService(repo Repository, items item.Service, settingsSvc settings.Service) Service {
	return &service{
		repo:     repo,
		items:    items,
		settings: settingsSvc,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	name := strings.TrimSpace(req.CustomerName)
	email := customer.NormalizeEmail(req.CustomerEmail)
	if name == "" || email == "" {
		return nil, ErrCustomerRequired
	}
	if !customer.ValidEmail(email) {
		return nil, customer.ErrInvalidEmail
	}

	start := timeutil.TruncateToDay(req.StartDate)
	end := timeutil.TruncateToDay(req.EndDate)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	if req.StartTime != nil && req.EndTime != nil {
		startMin, err := timeutil.ParseClock(*req.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeRange
		}
		endMin, err := timeutil.ParseClock(*req.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeRange
		}
		if endMin <= startMin {
			return nil, ErrInvalidTimeRange
		}
	}

	if len(req.Lines) == 0 {
		return nil, ErrNoItems
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.IsWorkingDay(start) {
		return nil, ErrClosedDay
	}

	lines := make([]Line, 0, len(req.Lines))
	priced := make([]PricedLine, 0, len(req.Lines))
	for _, lr := range req.Lines {
		if lr.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}

		it, err := s.items.GetByID(ctx, lr.ItemID)
		if err != nil {
			return nil, err
		}
		if !it.Available {
			return nil, ErrItemUnavailable
		}
		if lr.Quantity > it.StockQuantity {
			return nil, &StockError{ItemName: it.Name, Stock: it.StockQuantity}
		}

		lines = append(lines, Line{
			ItemID:   it.ID,
			ItemName: it.Name,
			Quantity: lr.Quantity,
		})
		priced = append(priced, PricedLine{
			PricePerDay: it.PricePerDay,
			Quantity:    lr.Quantity,
		})
	}

	sub := &Submission{
		CustomerName:    name,
		CustomerEmail:   email,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		StartDate:       start,
		EndDate:         end,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		TotalPrice:      TotalPrice(priced, start, end),
		Lines:           lines,
	}

	return s.repo.Submit(ctx, sub)
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) DateAvailability(ctx context.Context, date time.Time, itemID string) (DateAvailability, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return DateAvailability{}, err
	}

	day := timeutil.TruncateToDay(date)
	bookings, err := s.repo.ListOverlappingRange(ctx, day, day, itemID)
	if err != nil {
		return DateAvailability{}, err
	}

	return ComputeDateAvailability(day, cfg, bookings), nil
}

func (s *service) MonthAvailability(ctx context.Context, year int, month time.Month, itemID string) ([]DateAvailability, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	bookings, err := s.repo.ListOverlappingRange(ctx, first, last, itemID)
	if err != nil {
		return nil, err
	}

	days := make([]DateAvailability, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, ComputeDateAvailability(d, cfg, bookings))
	}
	return days, nil
}

func (s *service) AvailableStock(ctx context.Context, itemID string, date time.Time) (int, error) {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return 0, err
	}

	day := timeutil.TruncateToDay(date)
	lines, err := s.repo.ListStockLines(ctx, itemID, day)
	if err != nil {
		return 0, err
	}

	return AvailableStock(it.StockQuantity, day, lines), nil
}
