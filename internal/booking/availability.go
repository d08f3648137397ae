package booking

import (
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/timeutil"
	"github.com/nekogravitycat/rental-booking-backend/internal/settings"
)

// SlotStatus is the availability colour of a time slot or a whole day.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPending   SlotStatus = "pending"
	SlotBooked    SlotStatus = "booked"
)

// TimeSlot is the availability of one configured start time on one date.
type TimeSlot struct {
	Time   string     `json:"time"`
	Status SlotStatus `json:"status"`
}

// DateAvailability is the per-date result of the slot calculator.
type DateAvailability struct {
	Date         time.Time  `json:"date"`
	IsWorkingDay bool       `json:"is_working_day"`
	Status       SlotStatus `json:"status"`
	TimeSlots    []TimeSlot `json:"time_slots"`
}

// ComputeDateAvailability derives the slot grid for one date from the
// configured working days and time slots plus the bookings overlapping that
// date. It is a pure function: the same inputs always produce the same
// result.
//
// Non-working days report status "booked" with no slots. On working days each
// configured slot is checked against every non-cancelled booking covering the
// date: a confirmed booking whose [start, end) window contains the slot marks
// it booked, a pending one marks it pending, and confirmed always wins when
// both apply. A day with a mix of free and taken slots reports "pending"
// overall, so partially occupied dates read as "check availability" rather
// than fully free.
func ComputeDateAvailability(date time.Time, cfg *settings.Settings, bookings []*Booking) DateAvailability {
	day := timeutil.TruncateToDay(date)

	if !cfg.IsWorkingDay(day) {
		return DateAvailability{
			Date:         day,
			IsWorkingDay: false,
			Status:       SlotBooked,
			TimeSlots:    []TimeSlot{},
		}
	}

	slots := make([]TimeSlot, 0, len(cfg.TimeSlots))
	for _, slot := range cfg.TimeSlots {
		slots = append(slots, TimeSlot{
			Time:   slot,
			Status: slotStatusAt(slot, day, bookings),
		})
	}

	return DateAvailability{
		Date:         day,
		IsWorkingDay: true,
		Status:       overallStatus(slots),
		TimeSlots:    slots,
	}
}

// slotStatusAt resolves one slot against the bookings covering the date.
func slotStatusAt(slot string, day time.Time, bookings []*Booking) SlotStatus {
	slotMin, err := timeutil.ParseClock(slot)
	if err != nil {
		return SlotAvailable
	}

	hasPending := false
	for _, b := range bookings {
		if b.Status == StatusCancelled || !b.CoversDate(day) {
			continue
		}

		startMin, endMin := b.TimeWindow()
		if slotMin < startMin || slotMin >= endMin {
			continue
		}

		if b.Status == StatusConfirmed {
			return SlotBooked
		}
		hasPending = true
	}

	if hasPending {
		return SlotPending
	}
	return SlotAvailable
}

// overallStatus folds the slot grid into one day-level colour. Partial
// occupancy deliberately reports "pending" rather than "available".
func overallStatus(slots []TimeSlot) SlotStatus {
	hasBooked, hasPending, hasAvailable := false, false, false
	for _, s := range slots {
		switch s.Status {
		case SlotBooked:
			hasBooked = true
		case SlotPending:
			hasPending = true
		case SlotAvailable:
			hasAvailable = true
		}
	}

	switch {
	case hasBooked && !hasAvailable:
		return SlotBooked
	case hasPending && !hasAvailable:
		return SlotPending
	case hasBooked || hasPending:
		return SlotPending
	default:
		return SlotAvailable
	}
}

// StockLine is one booking line flattened with its parent booking's range and
// status, as consumed by the day-level stock calculator.
type StockLine struct {
	Quantity  int
	StartDate time.Time
	EndDate   time.Time
	Status    Status
}

// AvailableStock answers how many units of an item remain bookable on the
// given date: total stock minus the quantities of all non-cancelled booking
// lines whose date range covers the date, floored at zero. Day resolution
// only; this calculator is independent of the slot grid.
func AvailableStock(totalStock int, date time.Time, lines []StockLine) int {
	booked := 0
	for _, l := range lines {
		if l.Status == StatusCancelled {
			continue
		}
		if !timeutil.DateWithin(date, l.StartDate, l.EndDate) {
			continue
		}
		booked += l.Quantity
	}

	if available := totalStock - booked; available > 0 {
		return available
	}
	return 0
}
