// domain/repository/user_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// UserRepository - ที่เก็บข้อมูลผู้ใช้
type UserRepository interface {
	Create(user *models.User) error

	// FindByID ดึงผู้ใช้ตาม id - คืน nil ถ้าไม่พบ
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByUsername ดึงผู้ใช้ตาม username - คืน nil ถ้าไม่พบ
	FindByUsername(username string) (*models.User, error)

	// FindByEmail ดึงผู้ใช้ตาม email - คืน nil ถ้าไม่พบ
	FindByEmail(email string) (*models.User, error)

	// FindByIDs ดึงผู้ใช้ตามชุด id - คืนเฉพาะที่มีอยู่จริง
	FindByIDs(ids []uuid.UUID) ([]*models.User, error)

	Update(user *models.User) error
}
