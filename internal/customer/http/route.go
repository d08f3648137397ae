package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(admin *gin.RouterGroup, h *Handler) {
	admin.GET("/customers", h.List)
	admin.GET("/customers/:id", h.Get)
	admin.PUT("/customers/:id", h.Update)
	admin.DELETE("/customers/:id", h.Delete)
}
