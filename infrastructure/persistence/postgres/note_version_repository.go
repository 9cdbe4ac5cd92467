// infrastructure/persistence/postgres/note_version_repository.go
package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"gorm.io/gorm"
)

type noteVersionRepository struct {
	db *gorm.DB
}

// NewNoteVersionRepository สร้าง instance ใหม่ของ NoteVersionRepository
func NewNoteVersionRepository(db *gorm.DB) repository.NoteVersionRepository {
	return &noteVersionRepository{db: db}
}

// FindByNoteID ดึง version chain ทั้งหมด ใหม่สุดก่อน
// seq ตัดสินลำดับเมื่อ created_at ชนกัน - chain เป็นเส้นตรงเสมอ
func (r *noteVersionRepository) FindByNoteID(noteID uuid.UUID) ([]*models.NoteVersion, error) {
	var versions []*models.NoteVersion

	err := r.db.Where("note_id = ?", noteID).
		Order("created_at DESC, seq DESC").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}

	return versions, nil
}

// GetByID ดึง version เดียว - คืน nil ถ้าไม่พบหรือไม่ได้เป็นของ note นั้น
func (r *noteVersionRepository) GetByID(noteID, versionID uuid.UUID) (*models.NoteVersion, error) {
	var version models.NoteVersion
	err := r.db.Where("id = ? AND note_id = ?", versionID, noteID).First(&version).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &version, nil
}

// CountByNoteID นับจำนวน version ของ note
func (r *noteVersionRepository) CountByNoteID(noteID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.NoteVersion{}).
		Where("note_id = ?", noteID).
		Count(&count).Error
	return count, err
}
