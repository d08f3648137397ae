package settings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	current *Settings
	updated *Settings
}

func (f *fakeRepo) Get(_ context.Context) (*Settings, error) {
	if f.current == nil {
		return nil, ErrNotFound
	}
	cp := *f.current
	return &cp, nil
}

func (f *fakeRepo) Update(_ context.Context, s *Settings) error {
	f.updated = s
	return nil
}

func baseSettings() *Settings {
	return &Settings{
		ID:                     "s-1",
		CompanyName:            "Acme Rentals",
		Currency:               "EUR",
		WorkingDays:            []int{1, 2, 3, 4, 5},
		TimeSlots:              []string{"09:00", "10:00"},
		DefaultBookingDuration: 1,
	}
}

func intsPtr(v []int) *[]int          { return &v }
func stringsPtr(v []string) *[]string { return &v }
func strPtr(s string) *string         { return &s }
func intPtr(i int) *int               { return &i }

func TestUpdateNormalizesWorkingDays(t *testing.T) {
	repo := &fakeRepo{current: baseSettings()}
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), UpdateRequest{
		WorkingDays: intsPtr([]int{6, 1, 3, 1}),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 6}, updated.WorkingDays)
}

func TestUpdateNormalizesTimeSlots(t *testing.T) {
	repo := &fakeRepo{current: baseSettings()}
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), UpdateRequest{
		TimeSlots: stringsPtr([]string{"14:00", " 09:00", "14:00"}),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "14:00"}, updated.TimeSlots)
}

func TestUpdateValidation(t *testing.T) {
	negativeVAT := decimal.NewFromInt(-1)

	tests := []struct {
		name    string
		req     UpdateRequest
		wantErr error
	}{
		{
			name:    "blank company name",
			req:     UpdateRequest{CompanyName: strPtr("  ")},
			wantErr: ErrCompanyNameMissing,
		},
		{
			name:    "out of range weekday",
			req:     UpdateRequest{WorkingDays: intsPtr([]int{1, 7})},
			wantErr: ErrInvalidWorkingDay,
		},
		{
			name:    "malformed time slot",
			req:     UpdateRequest{TimeSlots: stringsPtr([]string{"09:00", "25:00"})},
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "zero duration",
			req:     UpdateRequest{DefaultBookingDuration: intPtr(0)},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "negative vat",
			req:     UpdateRequest{VATPercentage: &negativeVAT},
			wantErr: ErrInvalidVAT,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeRepo{current: baseSettings()})
			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdatePartialKeepsOtherFields(t *testing.T) {
	repo := &fakeRepo{current: baseSettings()}
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), UpdateRequest{
		Currency: strPtr("usd"),
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", updated.Currency)
	assert.Equal(t, "Acme Rentals", updated.CompanyName)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, updated.WorkingDays)
	require.NotNil(t, repo.updated)
}

func TestIsWorkingDay(t *testing.T) {
	s := baseSettings() // Monday through Friday

	assert.True(t, s.IsWorkingDay(mustDate(t, "2024-06-10")))  // Monday
	assert.False(t, s.IsWorkingDay(mustDate(t, "2024-06-09"))) // Sunday
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	require.NoError(t, err)
	return d
}
