package booking

import (
	"testing"
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() *settings.Settings {
	return &settings.Settings{
		CompanyName: "Test Rentals",
		WorkingDays: []int{1, 2, 3, 4, 5, 6}, // Monday through Saturday
		TimeSlots:   []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"},
	}
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func TestComputeDateAvailability_NonWorkingDay(t *testing.T) {
	// 2024-06-09 is a Sunday.
	result := ComputeDateAvailability(day("2024-06-09"), testSettings(), nil)

	assert.False(t, result.IsWorkingDay)
	assert.Equal(t, SlotBooked, result.Status)
	assert.Empty(t, result.TimeSlots)
}

func TestComputeDateAvailability_NoBookings(t *testing.T) {
	// 2024-06-10 is a Monday.
	result := ComputeDateAvailability(day("2024-06-10"), testSettings(), nil)

	assert.True(t, result.IsWorkingDay)
	assert.Equal(t, SlotAvailable, result.Status)
	require.Len(t, result.TimeSlots, 9)
	for _, slot := range result.TimeSlots {
		assert.Equal(t, SlotAvailable, slot.Status)
	}
}

func TestComputeDateAvailability_WholeDayConfirmed(t *testing.T) {
	bookings := []*Booking{{
		StartDate: day("2024-06-10"),
		EndDate:   day("2024-06-12"),
		Status:    StatusConfirmed,
	}}

	result := ComputeDateAvailability(day("2024-06-11"), testSettings(), bookings)

	assert.Equal(t, SlotBooked, result.Status)
	for _, slot := range result.TimeSlots {
		assert.Equal(t, SlotBooked, slot.Status)
	}
}

func TestComputeDateAvailability_ConfirmedBeatsPending(t *testing.T) {
	bookings := []*Booking{
		{
			StartDate: day("2024-06-10"),
			EndDate:   day("2024-06-10"),
			StartTime: strPtr("10:00"),
			EndTime:   strPtr("12:00"),
			Status:    StatusPending,
		},
		{
			StartDate: day("2024-06-10"),
			EndDate:   day("2024-06-10"),
			StartTime: strPtr("10:00"),
			EndTime:   strPtr("12:00"),
			Status:    StatusConfirmed,
		},
	}

	result := ComputeDateAvailability(day("2024-06-10"), testSettings(), bookings)

	byTime := make(map[string]SlotStatus)
	for _, slot := range result.TimeSlots {
		byTime[slot.Time] = slot.Status
	}
	assert.Equal(t, SlotBooked, byTime["10:00"])
	assert.Equal(t, SlotBooked, byTime["11:00"])
	// The window is half-open: the end time itself is free again.
	assert.Equal(t, SlotAvailable, byTime["12:00"])
}

func TestComputeDateAvailability_PartialOccupancyReportsPending(t *testing.T) {
	bookings := []*Booking{{
		StartDate: day("2024-06-10"),
		EndDate:   day("2024-06-10"),
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("11:00"),
		Status:    StatusConfirmed,
	}}

	result := ComputeDateAvailability(day("2024-06-10"), testSettings(), bookings)

	assert.Equal(t, SlotPending, result.Status)

	byTime := make(map[string]SlotStatus)
	for _, slot := range result.TimeSlots {
		byTime[slot.Time] = slot.Status
	}
	assert.Equal(t, SlotBooked, byTime["09:00"])
	assert.Equal(t, SlotBooked, byTime["10:00"])
	assert.Equal(t, SlotAvailable, byTime["11:00"])
	assert.Equal(t, SlotAvailable, byTime["17:00"])
}

func TestComputeDateAvailability_AllSlotsPending(t *testing.T) {
	bookings := []*Booking{{
		StartDate: day("2024-06-10"),
		EndDate:   day("2024-06-10"),
		Status:    StatusPending,
	}}

	result := ComputeDateAvailability(day("2024-06-10"), testSettings(), bookings)

	assert.Equal(t, SlotPending, result.Status)
	for _, slot := range result.TimeSlots {
		assert.Equal(t, SlotPending, slot.Status)
	}
}

func TestComputeDateAvailability_CancelledIgnored(t *testing.T) {
	bookings := []*Booking{{
		StartDate: day("2024-06-10"),
		EndDate:   day("2024-06-10"),
		Status:    StatusCancelled,
	}}

	result := ComputeDateAvailability(day("2024-06-10"), testSettings(), bookings)

	assert.Equal(t, SlotAvailable, result.Status)
}

func TestComputeDateAvailability_BookingOutsideDate(t *testing.T) {
	bookings := []*Booking{{
		StartDate: day("2024-06-12"),
		EndDate:   day("2024-06-14"),
		Status:    StatusConfirmed,
	}}

	result := ComputeDateAvailability(day("2024-06-10"), testSettings(), bookings)

	assert.Equal(t, SlotAvailable, result.Status)
}

func TestComputeDateAvailability_Idempotent(t *testing.T) {
	bookings := []*Booking{{
		StartDate: day("2024-06-10"),
		EndDate:   day("2024-06-10"),
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("12:00"),
		Status:    StatusPending,
	}}

	first := ComputeDateAvailability(day("2024-06-10"), testSettings(), bookings)
	second := ComputeDateAvailability(day("2024-06-10"), testSettings(), bookings)

	assert.Equal(t, first, second)
}

func TestAvailableStock(t *testing.T) {
	target := day("2024-06-11")

	tests := []struct {
		name  string
		total int
		lines []StockLine
		want  int
	}{
		{
			name:  "no bookings",
			total: 3,
			want:  3,
		},
		{
			name:  "overlapping lines subtract",
			total: 3,
			lines: []StockLine{
				{Quantity: 1, StartDate: day("2024-06-10"), EndDate: day("2024-06-12"), Status: StatusConfirmed},
				{Quantity: 1, StartDate: day("2024-06-11"), EndDate: day("2024-06-11"), Status: StatusPending},
			},
			want: 1,
		},
		{
			name:  "cancelled lines ignored",
			total: 2,
			lines: []StockLine{
				{Quantity: 2, StartDate: day("2024-06-10"), EndDate: day("2024-06-12"), Status: StatusCancelled},
			},
			want: 2,
		},
		{
			name:  "ranges outside the date ignored",
			total: 2,
			lines: []StockLine{
				{Quantity: 2, StartDate: day("2024-06-12"), EndDate: day("2024-06-14"), Status: StatusConfirmed},
			},
			want: 2,
		},
		{
			name:  "floors at zero",
			total: 1,
			lines: []StockLine{
				{Quantity: 3, StartDate: day("2024-06-11"), EndDate: day("2024-06-11"), Status: StatusConfirmed},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableStock(tt.total, target, tt.lines))
		})
	}
}
