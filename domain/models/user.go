// domain/models/user.go

package models

import (
	"time"

	"github.com/thizplus/gofiber-notes-api/domain/types"

	"github.com/google/uuid"
)

// User - ผู้ใช้ในระบบ
type User struct {
	ID              uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username        string      `json:"username" gorm:"type:varchar(50);not null;unique"`
	Email           string      `json:"email,omitempty" gorm:"type:varchar(255);unique"`
	PasswordHash    string      `json:"-" gorm:"type:text"` // ไม่ส่งกลับในการ response JSON
	DisplayName     string      `json:"display_name,omitempty" gorm:"type:varchar(100)"`
	ProfileImageURL string      `json:"profile_image_url,omitempty" gorm:"type:text"`
	Bio             string      `json:"bio,omitempty" gorm:"type:text"`
	CreatedAt       time.Time   `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`
	LastActiveAt    *time.Time  `json:"last_active_at,omitempty" gorm:"type:timestamp with time zone"`
	Settings        types.JSONB `json:"settings,omitempty" gorm:"type:jsonb;default:'{}'::jsonb"`

	// Associations
	Notes         []*Note         `json:"notes,omitempty" gorm:"foreignkey:OwnerID"`
	SharedNotes   []*Note         `json:"shared_notes,omitempty" gorm:"many2many:note_users;"`
	RefreshTokens []*RefreshToken `json:"refresh_tokens,omitempty" gorm:"foreignkey:UserID"`
}

// TableName - ระบุชื่อตารางใน database
func (User) TableName() string {
	return "users"
}
