package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/rental-booking-backend/internal/settings"
)

type Handler struct {
	service settings.Service
}

func NewHandler(service settings.Service) *Handler {
	return &Handler{service: service}
}

// GetPublic serves the settings subset the customer booking flow needs.
func (h *Handler) GetPublic(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPublicSettingsResponse(s))
}

// Get serves the full settings row for the back office.
func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSettingsResponse(s))
}

func (h *Handler) Update(c *gin.Context) {
	var body UpdateSettingsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := settings.UpdateRequest{
		CompanyName:            body.CompanyName,
		CompanyEmail:           body.CompanyEmail,
		CompanyPhone:           body.CompanyPhone,
		CompanyAddress:         body.CompanyAddress,
		VATPercentage:          body.VATPercentage,
		Currency:               body.Currency,
		WorkingDays:            body.WorkingDays,
		TimeSlots:              body.TimeSlots,
		DefaultBookingDuration: body.DefaultBookingDuration,
		PickupTime:             body.PickupTime,
		PickupBlockedHours:     body.PickupBlockedHours,
	}

	s, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSettingsResponse(s))
}
