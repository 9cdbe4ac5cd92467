// domain/repository/note_version_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// NoteVersionRepository - ledger แบบ append-only ของ version chain
// การสร้าง version เกิดใน transaction ของ NoteRepository เท่านั้น
// repository นี้มีไว้อ่านอย่างเดียว
type NoteVersionRepository interface {
	// FindByNoteID ดึง version chain ทั้งหมดของ note ใหม่สุดก่อน
	// เรียงด้วย created_at แล้วตัดสินด้วย seq เมื่อเวลาชนกัน
	FindByNoteID(noteID uuid.UUID) ([]*models.NoteVersion, error)

	// GetByID ดึง version เดียว - คืน nil ถ้าไม่พบหรือไม่ได้เป็นของ note นั้น
	GetByID(noteID, versionID uuid.UUID) (*models.NoteVersion, error)

	// CountByNoteID นับจำนวน version ของ note
	CountByNoteID(noteID uuid.UUID) (int64, error)
}
