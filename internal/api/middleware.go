package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/rental-booking-backend/internal/auth"
	"github.com/nekogravitycat/rental-booking-backend/internal/staff"
)

// RequireAdmin ensures the authenticated staff member has admin privileges.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin(staffService staff.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID := auth.GetUserID(c)
		if staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		a, err := staffService.GetByID(c.Request.Context(), staffID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account not found"})
			return
		}

		if !a.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
