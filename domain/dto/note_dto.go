// domain/dto/note_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// ============ Request DTOs ============

// CreateNoteRequest สำหรับการสร้างบันทึกใหม่
type CreateNoteRequest struct {
	Title         string      `json:"title" validate:"required,max=255"`
	Description   string      `json:"description"`
	Visibility    string      `json:"visibility" validate:"omitempty,oneof=private custom public"`
	TagIDs        []uuid.UUID `json:"tag_ids"`
	CustomUserIDs []uuid.UUID `json:"custom_user_ids"`
}

// UpdateNoteRequest สำหรับการแก้ไขบันทึกแบบ partial
// field ที่เป็น nil จะไม่ถูกแตะต้อง - TagIDs ที่ไม่ใช่ nil จะแทนที่ชุด tag ทั้งหมด
type UpdateNoteRequest struct {
	Title       *string      `json:"title" validate:"omitempty,max=255"`
	Description *string      `json:"description"`
	Visibility  *string      `json:"visibility" validate:"omitempty,oneof=private custom public"`
	TagIDs      *[]uuid.UUID `json:"tag_ids"`
}

// BulkNoteRequest สำหรับ bulk archive/restore
type BulkNoteRequest struct {
	NoteIDs []uuid.UUID `json:"note_ids" validate:"required,min=1"`
}

// ============ Response DTOs ============

// TagChanges - tag ที่ถูกเพิ่ม/ถอดออกจากการ update เทียบกับชุดก่อนหน้า
// คำนวณเพื่อ observability เท่านั้น ไม่ถูก persist
type TagChanges struct {
	Added   []uuid.UUID `json:"added"`
	Removed []uuid.UUID `json:"removed"`
}

// NoteStats - จำนวนบันทึกของผู้ใช้แยกตามสถานะ
type NoteStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Archived int64 `json:"archived"`
}

// NoteVersionResponse - version หนึ่งรายการพร้อม tag snapshot ที่ deserialize แล้ว
type NoteVersionResponse struct {
	ID            uuid.UUID           `json:"id"`
	NoteID        uuid.UUID           `json:"note_id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Visibility    string              `json:"visibility"`
	CreatedBy     uuid.UUID           `json:"created_by"`
	Tags          models.TagSnapshots `json:"tags"`
	IsRevertPoint bool                `json:"is_revert_point"`
	CreatedAt     time.Time           `json:"created_at"`
}

// ============ Audit log DTOs ============

// การกระทำที่ audit log แสดงต่อ version หนึ่งรายการ
const (
	AuditActionUpdated  = "UPDATED"
	AuditActionReverted = "REVERTED"
)

// FieldChange - ค่าก่อน/หลังของ field เดียวใน audit log
// From เป็น nil สำหรับรายการเก่าสุดของ chain (ไม่มี predecessor)
type FieldChange struct {
	From *string `json:"from"`
	To   string  `json:"to"`
}

// AuditChanges - diff ของ field ที่ถูก version ติดตาม
// ทุก entry แสดงครบทั้งสาม field เสมอ แม้ค่าจะไม่เปลี่ยน (from = to)
type AuditChanges struct {
	Title       FieldChange `json:"title"`
	Description FieldChange `json:"description"`
	Visibility  FieldChange `json:"visibility"`
}

// AuditLogEntry - หนึ่งบรรทัดของ audit log ที่สร้างจาก version chain ตอนอ่าน
// ไม่มีการเก็บ audit log แยกต่างหาก - สร้างใหม่จาก chain ได้เสมอ
type AuditLogEntry struct {
	ID            uuid.UUID    `json:"id"`
	Action        string       `json:"action"`
	Timestamp     time.Time    `json:"timestamp"`
	UserID        uuid.UUID    `json:"user_id"`
	NoteID        uuid.UUID    `json:"note_id"`
	NoteTitle     string       `json:"note_title"`
	Changes       AuditChanges `json:"changes"`
	VersionID     uuid.UUID    `json:"version_id"`
	IsRevertPoint bool         `json:"is_revert_point"`
}
