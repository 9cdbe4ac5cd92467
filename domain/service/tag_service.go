// domain/service/tag_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// TagService - จัดการ tag ที่ใช้ร่วมกันทั้งระบบ
// core ของ note ไม่สร้าง tag เอง - สร้างผ่าน service นี้เท่านั้น
type TagService interface {
	CreateTag(name string) (*models.Tag, error)
	GetTag(id uuid.UUID) (*models.Tag, error)
	GetTags() ([]*models.Tag, error)
}
