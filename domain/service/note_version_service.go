// domain/service/note_version_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// NoteVersionService - อ่าน version chain และสร้าง audit log จาก chain ตอนอ่าน
// ทุก operation เป็นของเจ้าของ note เท่านั้น
type NoteVersionService interface {
	// GetVersions ดึง version chain ทั้งหมด ใหม่สุดก่อน
	GetVersions(actorID, noteID uuid.UUID) ([]*models.NoteVersion, error)

	// GetVersionByID ดึง version เดียวพร้อม tag snapshot ที่ deserialize แล้ว
	GetVersionByID(actorID, noteID, versionID uuid.UUID) (*dto.NoteVersionResponse, error)

	// GetAuditLog สร้าง audit log โดย diff รายการที่ติดกันใน chain
	// เป็น projection ตอนอ่านล้วนๆ - ไม่มี storage ของ audit แยกต่างหาก
	GetAuditLog(actorID, noteID uuid.UUID) ([]*dto.AuditLogEntry, error)
}
