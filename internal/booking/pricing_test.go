package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name  string
		lines []PricedLine
		start string
		end   string
		want  string
	}{
		{
			name: "single item single day",
			lines: []PricedLine{
				{PricePerDay: decimal.NewFromInt(50), Quantity: 1},
			},
			start: "2024-06-10",
			end:   "2024-06-10",
			want:  "50",
		},
		{
			name: "inclusive day count",
			lines: []PricedLine{
				{PricePerDay: decimal.NewFromInt(50), Quantity: 1},
			},
			start: "2024-06-10",
			end:   "2024-06-12",
			want:  "150",
		},
		{
			name: "quantities and shared day count",
			lines: []PricedLine{
				{PricePerDay: decimal.NewFromInt(50), Quantity: 2},
				{PricePerDay: decimal.NewFromInt(30), Quantity: 1},
			},
			start: "2024-06-10",
			end:   "2024-06-11",
			want:  "260",
		},
		{
			name: "fractional prices",
			lines: []PricedLine{
				{PricePerDay: decimal.RequireFromString("19.99"), Quantity: 3},
			},
			start: "2024-06-10",
			end:   "2024-06-10",
			want:  "59.97",
		},
		{
			name:  "no lines",
			lines: nil,
			start: "2024-06-10",
			end:   "2024-06-12",
			want:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalPrice(tt.lines, day(tt.start), day(tt.end))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}
