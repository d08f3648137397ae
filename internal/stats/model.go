package stats

import (
	"github.com/shopspring/decimal"
)

// Dashboard aggregates the back-office overview numbers. Revenue counts
// confirmed bookings only; booking counts exclude cancelled ones.
type Dashboard struct {
	BookingsToday     int
	BookingsThisMonth int
	BookingsTotal     int
	RevenueThisMonth  decimal.Decimal
	UniqueCustomers   int
	PopularItem       *PopularItem
}

// PopularItem is the most-booked item by total line quantity.
type PopularItem struct {
	ItemID   string
	ItemName string
	Quantity int
}
