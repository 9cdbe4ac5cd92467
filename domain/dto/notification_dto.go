// domain/dto/notification_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/types"
)

// ประเภทของ notification ที่ระบบส่งหลัง mutation สำเร็จ
const (
	NotificationNoteCreated    = "note.created"
	NotificationNoteUpdated    = "note.updated"
	NotificationNoteArchived   = "note.archived"
	NotificationNoteRestored   = "note.restored"
	NotificationNoteReverted   = "note.reverted"
	NotificationVersionCreated = "note.version_created"
	NotificationBulkArchived   = "note.bulk_archived"
	NotificationBulkRestored   = "note.bulk_restored"
)

// Notification - payload ที่ส่งผ่าน Redis ไปยัง WebSocket hub
type Notification struct {
	ID        uuid.UUID   `json:"id"`
	Type      string      `json:"type"`
	UserID    uuid.UUID   `json:"user_id"`
	NoteID    uuid.UUID   `json:"note_id"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	Metadata  types.JSONB `json:"metadata,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Read      bool        `json:"read"`
}
