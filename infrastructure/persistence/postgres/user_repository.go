// infrastructure/persistence/postgres/user_repository.go
package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository สร้าง instance ใหม่ของ UserRepository
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create สร้างผู้ใช้ใหม่
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID ดึงผู้ใช้ตาม id - คืน nil ถ้าไม่พบ
func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByUsername ดึงผู้ใช้ตาม username - คืน nil ถ้าไม่พบ
func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByEmail ดึงผู้ใช้ตาม email - คืน nil ถ้าไม่พบ
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// FindByIDs ดึงผู้ใช้ตามชุด id - คืนเฉพาะที่มีอยู่จริง
func (r *userRepository) FindByIDs(ids []uuid.UUID) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}

	var users []*models.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// Update อัปเดตข้อมูลผู้ใช้
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
