package http

import (
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/customer"
	"github.com/shopspring/decimal"
)

type CustomerResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone"`
	Address    *string         `json:"address"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Notes      *string         `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         cust.ID,
		Name:       cust.Name,
		Email:      cust.Email,
		Phone:      cust.Phone,
		Address:    cust.Address,
		TotalSpent: cust.TotalSpent,
		Notes:      cust.Notes,
		CreatedAt:  cust.CreatedAt,
		UpdatedAt:  cust.UpdatedAt,
	}
}


type UpdateCustomerBody struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}
