package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/settings/public", h.GetPublic)

	admin.GET("/settings", h.Get)
	admin.PUT("/settings", h.Update)
}
