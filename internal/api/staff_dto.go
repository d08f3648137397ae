package api

// RegisterStaffRequest is the payload for POST /v1/admin/staff.
type RegisterStaffRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

// SetActiveRequest is the payload for PATCH /v1/admin/staff/:id/active.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
