// domain/service/note_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// NoteService - mutation engine ของ note
// ทุก mutation ตรวจสิทธิ์เจ้าของ เขียนแบบ atomic และแจ้ง notification หลัง commit
type NoteService interface {
	// CreateNote สร้างบันทึกใหม่สถานะ active - ไม่สร้าง version
	// version chain เริ่มที่การ update ครั้งแรกเท่านั้น
	CreateNote(ownerID uuid.UUID, req *dto.CreateNoteRequest) (*models.Note, error)

	// GetNote ดึงบันทึก - เจ้าของเสมอ, ผู้ใช้ใน note_users เมื่อ visibility เป็น
	// custom, และทุกคนเมื่อ public
	GetNote(actorID, noteID uuid.UUID) (*models.Note, error)

	// GetNotes ดึงรายการบันทึกของผู้ใช้ - ไม่รวม archived เว้นแต่ระบุ
	GetNotes(ownerID uuid.UUID, includeArchived bool) ([]*models.Note, error)

	// GetArchivedNotes ดึงเฉพาะบันทึกที่ archived
	GetArchivedNotes(ownerID uuid.UUID) ([]*models.Note, error)

	// GetNotesStats นับจำนวนบันทึกแยกตามสถานะ
	GetNotesStats(ownerID uuid.UUID) (*dto.NoteStats, error)

	// UpdateNote แก้ไขแบบ partial - append version ของสถานะก่อนแก้ลง chain ก่อนเสมอ
	UpdateNote(actorID, noteID uuid.UUID, req *dto.UpdateNoteRequest) (*models.Note, error)

	// DeleteNote ทำ soft delete (archived=true) - ไม่สร้าง version
	DeleteNote(actorID, noteID uuid.UUID) error

	// RestoreNote คืนบันทึกจาก archive - ต้อง archived อยู่ก่อน
	RestoreNote(actorID, noteID uuid.UUID) (*models.Note, error)

	// PermanentlyDeleteNote ลบถาวรพร้อม cascade ทุกตารางลูก - ต้อง archived อยู่ก่อน
	PermanentlyDeleteNote(actorID, noteID uuid.UUID) error

	// BulkArchiveNotes / BulkRestoreNotes - all-or-nothing ทั้ง batch
	BulkArchiveNotes(actorID uuid.UUID, noteIDs []uuid.UUID) error
	BulkRestoreNotes(actorID uuid.UUID, noteIDs []uuid.UUID) error

	// RevertNoteToVersion คืนบันทึกไปยังสถานะของ version เป้าหมาย
	// สร้าง revert point ของสถานะปัจจุบันก่อนเสมอ - ไม่มี version ใดถูกลบ
	RevertNoteToVersion(actorID, noteID, versionID uuid.UUID) (*models.Note, error)
}
