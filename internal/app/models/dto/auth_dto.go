package dto

import "github.com/sicproject/backend/internal/app/models"

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and, for student accounts, the
// linked student record.
type LoginResponse struct {
	Token       string          `json:"token"`
	Username    string          `json:"username"`
	Role        string          `json:"role"`
	StudentID   string          `json:"student_id,omitempty"`
	StudentInfo *models.Student `json:"student_info,omitempty"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse reports the new account id.
type RegisterResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// ForgotPasswordRequest is the body of POST /api/forgot-password.
type ForgotPasswordRequest struct {
	Username string `json:"username" binding:"required"`
}
