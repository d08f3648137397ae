package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, h *Handler) {
	admin.GET("/stats", h.Dashboard)
}
