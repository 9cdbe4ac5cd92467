// domain/dto/auth_dto.go
package dto

import "github.com/thizplus/gofiber-notes-api/domain/models"

// RegisterRequest สำหรับการสมัครสมาชิก
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest สำหรับการเข้าสู่ระบบ
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest สำหรับการขอ access token ใหม่
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest สำหรับการแก้ไขโปรไฟล์
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	Bio         *string `json:"bio"`
}

// TokenPair - access token คู่กับ refresh token
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse - ผลลัพธ์ของ register/login
type AuthResponse struct {
	User   *models.User `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}
