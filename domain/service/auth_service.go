// domain/service/auth_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/dto"
)

// AuthService - ออกและตรวจสอบ token ของผู้ใช้
type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)

	// Refresh แลก refresh token เป็น token คู่ใหม่ (rotate refresh token เดิมทิ้ง)
	Refresh(refreshToken string) (*dto.TokenPair, error)

	// Logout เพิกถอน access token ปัจจุบันและลบ refresh token ทั้งหมดของผู้ใช้
	Logout(userID uuid.UUID, accessToken string) error

	// ValidateToken ตรวจ access token และคืน user id - ใช้โดย middleware และ hub
	ValidateToken(token string) (uuid.UUID, error)
}
