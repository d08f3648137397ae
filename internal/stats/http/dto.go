package http

import (
	"github.com/nekogravitycat/rental-booking-backend/internal/stats"
	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	BookingsToday     int                  `json:"bookings_today"`
	BookingsThisMonth int                  `json:"bookings_this_month"`
	BookingsTotal     int                  `json:"bookings_total"`
	RevenueThisMonth  decimal.Decimal      `json:"revenue_this_month"`
	UniqueCustomers   int                  `json:"unique_customers"`
	PopularItem       *PopularItemResponse `json:"popular_item"`
}

type PopularItemResponse struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

func NewDashboardResponse(d *stats.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		BookingsToday:     d.BookingsToday,
		BookingsThisMonth: d.BookingsThisMonth,
		BookingsTotal:     d.BookingsTotal,
		RevenueThisMonth:  d.RevenueThisMonth,
		UniqueCustomers:   d.UniqueCustomers,
	}
	if d.PopularItem != nil {
		resp.PopularItem = &PopularItemResponse{
			ItemID:   d.PopularItem.ItemID,
			ItemName: d.PopularItem.ItemName,
			Quantity: d.PopularItem.Quantity,
		}
	}
	return resp
}
