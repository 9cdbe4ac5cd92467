// domain/repository/note_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// NoteChanges - partial update ของ note
// field ที่เป็น nil จะไม่ถูกแตะต้อง - TagIDs ที่ไม่ใช่ nil แทนที่ชุด tag ทั้งหมด
type NoteChanges struct {
	Title       *string
	Description *string
	Visibility  *models.NoteVisibility
	TagIDs      *[]uuid.UUID
}

// NoteRepository - ที่เก็บสถานะปัจจุบันของ note
// method ที่เป็น mutation หลายขั้นตอน (UpdateWithVersion, RevertToVersion,
// PermanentlyDelete, BulkSetArchived) ต้องทำงานใน transaction เดียว
// และ lock แถวของ note ระหว่างอ่าน-สร้าง version-เขียน
type NoteRepository interface {
	// Create สร้าง note พร้อม association ของ tag และ custom user ใน transaction เดียว
	// คืน types.ErrTagNotFound ถ้า tag id ใดไม่มีอยู่
	Create(note *models.Note, tagIDs []uuid.UUID, customUserIDs []uuid.UUID) (*models.Note, error)

	// GetByID ดึง note พร้อม tags และ shared users - คืน nil ถ้าไม่พบ
	GetByID(id uuid.UUID) (*models.Note, error)

	// Query operations
	FindByOwnerID(ownerID uuid.UUID, includeArchived bool) ([]*models.Note, error)
	FindArchivedByOwnerID(ownerID uuid.UUID) ([]*models.Note, error)
	CountByOwnerID(ownerID uuid.UUID) (total, active, archived int64, err error)

	// SetArchived ตั้งค่า archived flag และ stamp updated_at
	SetArchived(id uuid.UUID, archived bool) error

	// UpdateWithVersion ทำ read-append-write ใน transaction เดียวภายใต้ row lock:
	// อ่านสถานะปัจจุบัน → append version ของสถานะก่อนแก้ (isRevertPoint=false)
	// → apply เฉพาะ field ที่ส่งมา → stamp updated_at
	// คืน note ที่อัปเดตแล้วพร้อม version ที่ถูกสร้าง
	UpdateWithVersion(noteID, actorID uuid.UUID, changes *NoteChanges) (*models.Note, *models.NoteVersion, error)

	// RevertToVersion ทำ revert ใน transaction เดียวภายใต้ row lock:
	// append revert point ของสถานะปัจจุบัน (isRevertPoint=true)
	// → คืนค่า title/description/visibility จาก version เป้าหมาย
	// → สร้าง tag association ใหม่จาก snapshot (tag ที่ถูกลบไปแล้วถูกข้ามเงียบๆ)
	RevertToVersion(noteID, actorID, versionID uuid.UUID) (*models.Note, *models.NoteVersion, error)

	// PermanentlyDelete ลบ note_tags, note_users, note_versions และ note
	// ทั้งหมดใน transaction เดียว - ห้ามเหลือแถว orphan
	PermanentlyDelete(id uuid.UUID) error

	// BulkSetArchived ตรวจเงื่อนไขของทั้ง batch ภายใต้ lock ก่อนเขียนแถวใดๆ:
	// ทุก id ต้องมีอยู่ เป็นของ ownerID และอยู่ในสถานะตรงข้ามกับ archived
	// ถ้ารายการใดไม่ผ่านคืน types.ErrAccessDenied โดยไม่เขียนอะไรเลย
	BulkSetArchived(ownerID uuid.UUID, ids []uuid.UUID, archived bool) error
}
