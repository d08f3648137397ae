package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/rental-booking-backend/internal/auth"
	"github.com/nekogravitycat/rental-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/rental-booking-backend/internal/staff"
)

type AuthHandler struct {
	staffService staff.Service
	jwtManager   *auth.JWTManager
}

func NewAuthHandler(staffService staff.Service, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		staffService: staffService,
		jwtManager:   jwtManager,
	}
}

//
// POST /v1/auth/login
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	a, err := h.staffService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(a.ID, a.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Staff:       NewStaffResponse(a),
	})
}

//
// GET /v1/me
//

func (h *AuthHandler) Me(c *gin.Context) {
	staffID := auth.GetUserID(c)
	if staffID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	a, err := h.staffService.GetByID(c.Request.Context(), staffID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{Staff: NewStaffResponse(a)})
}
