// domain/models/tag.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag - ป้ายกำกับที่ใช้ร่วมกันทั้งระบบ ไม่มีเจ้าของ
type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `json:"name" gorm:"type:varchar(50);not null;unique"`
	CreatedAt time.Time `json:"created_at" gorm:"type:timestamp with time zone;default:now()"`

	// Associations
	Notes []*Note `json:"notes,omitempty" gorm:"many2many:note_tags;"`
}

// TableName - ระบุชื่อตารางใน database
func (Tag) TableName() string {
	return "tags"
}
