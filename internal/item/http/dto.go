package http

import (
	"time"

	"github.com/nekogravitycat/rental-booking-backend/internal/item"
	"github.com/shopspring/decimal"
)

type ItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	PricePerDay   decimal.Decimal `json:"price_per_day"`
	Category      string          `json:"category"`
	Available     bool            `json:"available"`
	StockQuantity int             `json:"stock_quantity"`
	ImageURL      *string         `json:"image_url"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		PricePerDay:   it.PricePerDay,
		Category:      it.Category,
		Available:     it.Available,
		StockQuantity: it.StockQuantity,
		ImageURL:      it.ImageURL,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}


type CreateItemBody struct {
	Name          string          `json:"name" binding:"required"`
	Description   *string         `json:"description"`
	PricePerDay   decimal.Decimal `json:"price_per_day" binding:"required"`
	Category      string          `json:"category"`
	Available     *bool           `json:"available"`
	StockQuantity *int            `json:"stock_quantity" binding:"omitempty,min=1"`
}

type UpdateItemBody struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	PricePerDay   *decimal.Decimal `json:"price_per_day"`
	Category      *string          `json:"category"`
	Available     *bool            `json:"available"`
	StockQuantity *int             `json:"stock_quantity" binding:"omitempty,min=1"`
}
