// domain/repository/tag_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// TagRepository - ที่เก็บ tag ที่ใช้ร่วมกันทั้งระบบ
type TagRepository interface {
	Create(tag *models.Tag) error

	// GetByID ดึง tag ตาม id - คืน nil ถ้าไม่พบ
	GetByID(id uuid.UUID) (*models.Tag, error)

	// FindByIDs ดึง tag ตามชุด id - คืนเฉพาะที่มีอยู่จริง
	FindByIDs(ids []uuid.UUID) ([]*models.Tag, error)

	FindAll() ([]*models.Tag, error)

	// GetByName ดึง tag ตามชื่อ - คืน nil ถ้าไม่พบ
	GetByName(name string) (*models.Tag, error)
}
