package http

import (
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/booking"
	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	StartTime     *string         `json:"start_time"`
	EndTime       *string         `json:"end_time"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        booking.Status  `json:"status"`
	Lines         []LineResponse  `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type LineResponse struct {
	ID       string `json:"id"`
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	lines := make([]LineResponse, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = LineResponse{
			ID:       l.ID,
			ItemID:   l.ItemID,
			ItemName: l.ItemName,
			Quantity: l.Quantity,
		}
	}

	return BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		StartDate:     b.StartDate.Format(timeutil.DateLayout),
		EndDate:       b.EndDate.Format(timeutil.DateLayout),
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		Lines:         lines,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type CreateBookingBody struct {
	CustomerName    string     `json:"customer_name" binding:"required"`
	CustomerEmail   string     `json:"customer_email" binding:"required,email"`
	CustomerPhone   *string    `json:"customer_phone"`
	CustomerAddress *string    `json:"customer_address"`
	StartDate       string     `json:"start_date" binding:"required"`
	EndDate         string     `json:"end_date" binding:"required"`
	StartTime       *string    `json:"start_time"`
	EndTime         *string    `json:"end_time"`
	Lines           []LineBody `json:"items" binding:"required,min=1,dive"`
}

type LineBody struct {
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// ListBookingsQuery binds the admin list filters. Sort fields are
// whitelisted; anything else is rejected before it reaches the repository.
type ListBookingsQuery struct {
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	ItemID     string `form:"item_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	From       string `form:"from"`
	To         string `form:"to"`
	Page       int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=start_date end_date created_at status total_price"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

type UpdateStatusBody struct {
	Status booking.Status `json:"status" binding:"required"`
}

type StockResponse struct {
	ItemID         string `json:"item_id"`
	Date           string `json:"date"`
	AvailableStock int    `json:"available_stock"`
}
