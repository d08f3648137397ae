package booking

import (
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// PricedLine pairs a requested quantity with the item's current day price.
type PricedLine struct {
	PricePerDay decimal.Decimal
	Quantity    int
}

// TotalPrice computes the booking total: the per-day sum over all lines
// multiplied by one shared inclusive day count. Every line is priced over the
// same number of days; there is no per-item day count.
func TotalPrice(lines []PricedLine, startDate, endDate time.Time) decimal.Decimal {
	days := decimal.NewFromInt(int64(timeutil.DaysInclusive(startDate, endDate)))

	perDay := decimal.Zero
	for _, l := range lines {
		perDay = perDay.Add(l.PricePerDay.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	return perDay.Mul(days)
}
