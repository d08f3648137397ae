package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/rental-booking-backend/internal/staff"
)

type StaffHandler struct {
	staffService staff.Service
}

func NewStaffHandler(staffService staff.Service) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

//
// GET /v1/admin/staff
//

func (h *StaffHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := staff.Filter{
		Email:    c.Query("email"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be a boolean"})
			return
		}
		filter.IsActive = &active
	}

	accounts, total, err := h.staffService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]StaffResponse, len(accounts))
	for i, a := range accounts {
		out[i] = NewStaffResponse(a)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(out, page, pageSize, total))
}

//
// POST /v1/admin/staff
//

func (h *StaffHandler) Register(c *gin.Context) {
	var req RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	a, err := h.staffService.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName, req.IsAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewStaffResponse(a))
}

//
// PATCH /v1/admin/staff/:id/active
//

func (h *StaffHandler) SetActive(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.staffService.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.staffService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewStaffResponse(a))
}

//
// DELETE /v1/admin/staff/:id
//

func (h *StaffHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.staffService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
