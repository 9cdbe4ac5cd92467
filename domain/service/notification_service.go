// domain/service/notification_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/dto"
)

// NotificationService - collaborator ที่ถูกเรียกหลัง mutation commit สำเร็จ
// ทุก method เป็น fire-and-forget: ความล้มเหลวถูก log และกลืน
// ไม่มีการ retry และไม่มีทาง rollback mutation ที่ commit ไปแล้ว
type NotificationService interface {
	NotifyNoteCreated(userID, noteID uuid.UUID, noteTitle string)
	NotifyNoteUpdated(userID, noteID uuid.UUID, noteTitle string, changedFields []string, tagChanges *dto.TagChanges)
	NotifyNoteArchived(userID, noteID uuid.UUID, noteTitle string)
	NotifyNoteRestored(userID, noteID uuid.UUID, noteTitle string)
	NotifyNoteReverted(userID, noteID uuid.UUID, noteTitle string, versionID uuid.UUID)
	NotifyVersionCreated(userID, noteID uuid.UUID, noteTitle string, versionID uuid.UUID)
	NotifyBulkArchived(userID uuid.UUID, noteIDs []uuid.UUID)
	NotifyBulkRestored(userID uuid.UUID, noteIDs []uuid.UUID)
}
