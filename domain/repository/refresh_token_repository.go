// domain/repository/refresh_token_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// RefreshTokenRepository - ที่เก็บ refresh token
type RefreshTokenRepository interface {
	Create(token *models.RefreshToken) error

	// GetByToken ดึง refresh token - คืน nil ถ้าไม่พบ
	GetByToken(token string) (*models.RefreshToken, error)

	Delete(token string) error
	DeleteByUserID(userID uuid.UUID) error
	DeleteExpired() error
}

// TokenBlacklistRepository - ที่เก็บ access token ที่ถูกเพิกถอน
type TokenBlacklistRepository interface {
	Add(entry *models.TokenBlacklist) error
	IsBlacklisted(token string) (bool, error)
	DeleteExpired() error
}
