package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(public, admin *gin.RouterGroup, h *Handler) {
	public.GET("/items", h.ListPublic)
	public.GET("/items/:id", h.Get)

	admin.GET("/items", h.ListAdmin)
	admin.POST("/items", h.Create)
	admin.PUT("/items/:id", h.Update)
	admin.DELETE("/items/:id", h.Delete)
	admin.POST("/items/:id/image", h.UploadImage)
}
