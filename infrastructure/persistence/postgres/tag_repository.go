// infrastructure/persistence/postgres/tag_repository.go
package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"gorm.io/gorm"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository สร้าง instance ใหม่ของ TagRepository
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// Create สร้าง tag ใหม่
func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// GetByID ดึง tag ตาม id - คืน nil ถ้าไม่พบ
func (r *tagRepository) GetByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("id = ?", id).First(&tag).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// FindByIDs ดึง tag ตามชุด id - คืนเฉพาะที่มีอยู่จริง
func (r *tagRepository) FindByIDs(ids []uuid.UUID) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return []*models.Tag{}, nil
	}

	var tags []*models.Tag
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}

	return tags, nil
}

// FindAll ดึง tag ทั้งหมดเรียงตามชื่อ
func (r *tagRepository) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	if err := r.db.Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetByName ดึง tag ตามชื่อ - คืน nil ถ้าไม่พบ
func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &tag, nil
}
