package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.POST("/bookings", h.Create)
	public.GET("/bookings/:id", h.Get)
	public.GET("/availability", h.DateAvailability)
	public.GET("/availability/month", h.MonthAvailability)
	public.GET("/items/:id/stock", h.Stock)

	admin.GET("/bookings", h.List)
	admin.GET("/bookings/:id", h.Get)
	admin.PATCH("/bookings/:id/status", h.UpdateStatus)
	admin.DELETE("/bookings/:id", h.Delete)
}
