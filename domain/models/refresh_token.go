// domain/models/refresh_token.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken - refresh token ที่ยังใช้งานได้ของผู้ใช้
type RefreshToken struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Token     string    `json:"-" gorm:"type:text;not null;uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at" gorm:"type:timestamp with time zone;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignkey:UserID"`
}

// TableName - ระบุชื่อตารางใน database
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// TokenBlacklist - access token ที่ถูกเพิกถอนก่อนหมดอายุ (logout)
type TokenBlacklist struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Token     string    `json:"-" gorm:"type:text;not null;uniqueIndex"`
	ExpiresAt time.Time `json:"expires_at" gorm:"type:timestamp with time zone;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
}

// TableName - ระบุชื่อตารางใน database
func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
