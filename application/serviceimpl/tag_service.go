// application/serviceimpl/tag_service.go
package serviceimpl

import (
	"strings"

	"github.com/google/uuid"

	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/domain/types"
)

type tagService struct {
	tagRepo repository.TagRepository
}

// NewTagService สร้าง instance ของ TagService
func NewTagService(tagRepo repository.TagRepository) service.TagService {
	return &tagService{tagRepo: tagRepo}
}

// CreateTag สร้าง tag ใหม่ - ชื่อซ้ำคืนตัวเดิม (idempotent)
func (s *tagService) CreateTag(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, types.ErrInvalidState
	}

	existing, err := s.tagRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	tag := &models.Tag{
		ID:   uuid.New(),
		Name: name,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// GetTag ดึง tag ตาม id
func (s *tagService) GetTag(id uuid.UUID) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, types.ErrTagNotFound
	}
	return tag, nil
}

// GetTags ดึง tag ทั้งหมดในระบบ
func (s *tagService) GetTags() ([]*models.Tag, error) {
	return s.tagRepo.FindAll()
}
