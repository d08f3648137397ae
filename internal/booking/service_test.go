package booking

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/customer"
	"github.com/nekogravitycat/rental-booking-backend/internal/item"
	"github.com/nekogravitycat/rental-booking-backend/internal/settings"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	submitted    *Submission
	submitErr    error
	overlapping  []*Booking
	stockLines   []StockLine
	setStatusErr error
	statuses     map[string]Status
	byID         map[string]*Booking
}

func (f *fakeRepo) Submit(_ context.Context, sub *Submission) (*Booking, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = sub
	return &Booking{
		ID:            "b-1",
		CustomerName:  sub.CustomerName,
		CustomerEmail: sub.CustomerEmail,
		StartDate:     sub.StartDate,
		EndDate:       sub.EndDate,
		StartTime:     sub.StartTime,
		EndTime:       sub.EndTime,
		TotalPrice:    sub.TotalPrice,
		Status:        StatusPending,
		Lines:         sub.Lines,
	}, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) SetStatus(_ context.Context, id string, status Status) error {
	if f.setStatusErr != nil {
		return f.setStatusErr
	}
	if f.statuses == nil {
		f.statuses = make(map[string]Status)
	}
	f.statuses[id] = status
	if b, ok := f.byID[id]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeRepo) ListOverlappingRange(_ context.Context, _, _ time.Time, _ string) ([]*Booking, error) {
	return f.overlapping, nil
}

func (f *fakeRepo) ListStockLines(_ context.Context, _ string, _ time.Time) ([]StockLine, error) {
	return f.stockLines, nil
}

type fakeItems struct {
	items map[string]*item.Item
}

func (f *fakeItems) Create(_ context.Context, _ item.CreateRequest) (*item.Item, error) {
	return nil, nil
}

func (f *fakeItems) GetByID(_ context.Context, id string) (*item.Item, error) {
	if it, ok := f.items[id]; ok {
		return it, nil
	}
	return nil, item.ErrNotFound
}

func (f *fakeItems) List(_ context.Context, _ item.Filter) ([]*item.Item, int, error) {
	return nil, 0, nil
}

func (f *fakeItems) Update(_ context.Context, _ string, _ item.UpdateRequest) (*item.Item, error) {
	return nil, nil
}

func (f *fakeItems) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeItems) UploadImage(_ context.Context, _ string, _ *multipart.FileHeader) (*item.Item, error) {
	return nil, nil
}

type fakeSettings struct {
	cfg *settings.Settings
	err error
}

func (f *fakeSettings) Get(_ context.Context) (*settings.Settings, error) {
	return f.cfg, f.err
}

func (f *fakeSettings) Update(_ context.Context, _ settings.UpdateRequest) (*settings.Settings, error) {
	return f.cfg, f.err
}

const (
	tentID     = "11111111-1111-1111-1111-111111111111"
	tableID    = "22222222-2222-2222-2222-222222222222"
	delistedID = "33333333-3333-3333-3333-333333333333"
)

func newTestService(repo *fakeRepo) Service {
	items := &fakeItems{items: map[string]*item.Item{
		tentID: {
			ID:            tentID,
			Name:          "Tent",
			PricePerDay:   decimal.NewFromInt(50),
			Available:     true,
			StockQuantity: 3,
		},
		tableID: {
			ID:            tableID,
			Name:          "Folding Table",
			PricePerDay:   decimal.NewFromInt(30),
			Available:     true,
			StockQuantity: 1,
		},
		delistedID: {
			ID:            delistedID,
			Name:          "Retired Gazebo",
			PricePerDay:   decimal.NewFromInt(80),
			Available:     false,
			StockQuantity: 2,
		},
	}}
	return NewService(repo, items, &fakeSettings{cfg: testSettings()})
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		CustomerName:  "Alice Example",
		CustomerEmail: "alice@example.com",
		StartDate:     day("2024-06-10"),
		EndDate:       day("2024-06-12"),
		Lines:         []LineRequest{{ItemID: tentID, Quantity: 2}},
	}
}

func TestServiceCreate(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, StatusPending, b.Status)
	// 50 * 2 units * 3 inclusive days
	assert.True(t, b.TotalPrice.Equal(decimal.NewFromInt(300)), "total was %s", b.TotalPrice)
	require.Len(t, repo.submitted.Lines, 1)
	assert.Equal(t, "Tent", repo.submitted.Lines[0].ItemName)
	assert.Equal(t, "alice@example.com", repo.submitted.CustomerEmail)
}

func TestServiceCreate_NormalizesEmail(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	req := validCreateRequest()
	req.CustomerEmail = "  Alice@Example.COM "

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", repo.submitted.CustomerEmail)
}

func TestServiceCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{
			name:    "missing customer name",
			mutate:  func(r *CreateRequest) { r.CustomerName = "  " },
			wantErr: ErrCustomerRequired,
		},
		{
			name:    "bad email",
			mutate:  func(r *CreateRequest) { r.CustomerEmail = "not-an-email" },
			wantErr: customer.ErrInvalidEmail,
		},
		{
			name: "end before start",
			mutate: func(r *CreateRequest) {
				r.StartDate = day("2024-06-12")
				r.EndDate = day("2024-06-10")
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name: "end time not after start time",
			mutate: func(r *CreateRequest) {
				r.StartTime = strPtr("14:00")
				r.EndTime = strPtr("14:00")
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "no items",
			mutate:  func(r *CreateRequest) { r.Lines = nil },
			wantErr: ErrNoItems,
		},
		{
			name:    "zero quantity",
			mutate:  func(r *CreateRequest) { r.Lines[0].Quantity = 0 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "delisted item",
			mutate: func(r *CreateRequest) {
				r.Lines = []LineRequest{{ItemID: delistedID, Quantity: 1}}
			},
			wantErr: ErrItemUnavailable,
		},
		{
			name: "start on closed day",
			mutate: func(r *CreateRequest) {
				// 2024-06-09 is a Sunday.
				r.StartDate = day("2024-06-09")
				r.EndDate = day("2024-06-10")
			},
			wantErr: ErrClosedDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeRepo{})
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServiceCreate_StockExceeded(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	req := validCreateRequest()
	req.Lines = []LineRequest{{ItemID: tableID, Quantity: 2}}

	_, err := svc.Create(context.Background(), req)

	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Folding Table", stockErr.ItemName)
	assert.Equal(t, 1, stockErr.Stock)
}

func TestServiceCreate_Conflict(t *testing.T) {
	repo := &fakeRepo{submitErr: &ConflictError{ItemName: "Tent"}}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Tent", conflict.ItemName)
}

func TestServiceUpdateStatus(t *testing.T) {
	repo := &fakeRepo{byID: map[string]*Booking{
		"b-1": {ID: "b-1", Status: StatusPending},
	}}
	svc := newTestService(repo)

	b, err := svc.UpdateStatus(context.Background(), "b-1", StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)

	_, err = svc.UpdateStatus(context.Background(), "b-1", Status("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestServiceDateAvailability(t *testing.T) {
	repo := &fakeRepo{overlapping: []*Booking{{
		StartDate: day("2024-06-10"),
		EndDate:   day("2024-06-10"),
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("11:00"),
		Status:    StatusConfirmed,
	}}}
	svc := newTestService(repo)

	avail, err := svc.DateAvailability(context.Background(), day("2024-06-10"), "")
	require.NoError(t, err)
	assert.Equal(t, SlotPending, avail.Status)
	assert.True(t, avail.IsWorkingDay)
}

func TestServiceMonthAvailability(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	days, err := svc.MonthAvailability(context.Background(), 2024, time.June, "")
	require.NoError(t, err)
	require.Len(t, days, 30)

	assert.Equal(t, day("2024-06-01"), days[0].Date)
	assert.Equal(t, day("2024-06-30"), days[29].Date)
	// June 2nd 2024 is a Sunday.
	assert.False(t, days[1].IsWorkingDay)
	assert.Equal(t, SlotBooked, days[1].Status)
}

func TestServiceAvailableStock(t *testing.T) {
	repo := &fakeRepo{stockLines: []StockLine{
		{Quantity: 2, StartDate: day("2024-06-10"), EndDate: day("2024-06-12"), Status: StatusConfirmed},
	}}
	svc := newTestService(repo)

	stock, err := svc.AvailableStock(context.Background(), tentID, day("2024-06-11"))
	require.NoError(t, err)
	assert.Equal(t, 1, stock)
}
