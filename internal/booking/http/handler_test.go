package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/rental-booking-backend/internal/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	listed     bool
	lastFilter booking.Filter
}

func (f *fakeService) Create(_ context.Context, _ booking.CreateRequest) (*booking.Booking, error) {
	return nil, booking.ErrNotFound
}

func (f *fakeService) GetByID(_ context.Context, _ string) (*booking.Booking, error) {
	return nil, booking.ErrNotFound
}

func (f *fakeService) List(_ context.Context, filter booking.Filter) ([]*booking.Booking, int, error) {
	f.listed = true
	f.lastFilter = filter
	return nil, 0, nil
}

func (f *fakeService) UpdateStatus(_ context.Context, _ string, _ booking.Status) (*booking.Booking, error) {
	return nil, booking.ErrNotFound
}

func (f *fakeService) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeService) DateAvailability(_ context.Context, _ time.Time, _ string) (booking.DateAvailability, error) {
	return booking.DateAvailability{}, nil
}

func (f *fakeService) MonthAvailability(_ context.Context, _ int, _ time.Month, _ string) ([]booking.DateAvailability, error) {
	return nil, nil
}

func (f *fakeService) AvailableStock(_ context.Context, _ string, _ time.Time) (int, error) {
	return 0, nil
}

func newListRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/bookings", NewHandler(svc).List)
	return r
}

func TestListRejectsUnknownSortColumns(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{
			name:  "sql in sort_by",
			query: "sort_by=start_date%3B%20SELECT%20pg_sleep(10)--",
		},
		{
			name:  "unknown sort_by column",
			query: "sort_by=password_hash",
		},
		{
			name:  "sql in sort_order",
			query: "sort_by=start_date&sort_order=desc%3B%20DROP%20TABLE%20bookings",
		},
		{
			name:  "invalid status",
			query: "status=pending%27%20OR%201%3D1--",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			router := newListRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/bookings?"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, svc.listed, "repository must never see unvalidated sort input")
		})
	}
}

func TestListPassesWhitelistedFilters(t *testing.T) {
	svc := &fakeService{}
	router := newListRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/bookings?status=confirmed&sort_by=total_price&sort_order=asc&from=2024-06-01&to=2024-06-30&page=2&page_size=5", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, svc.listed)

	assert.Equal(t, "confirmed", svc.lastFilter.Status)
	assert.Equal(t, "total_price", svc.lastFilter.SortBy)
	assert.Equal(t, "asc", svc.lastFilter.SortOrder)
	assert.Equal(t, 2, svc.lastFilter.Page)
	assert.Equal(t, 5, svc.lastFilter.PageSize)
	require.NotNil(t, svc.lastFilter.From)
	require.NotNil(t, svc.lastFilter.To)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *svc.lastFilter.From)
}
