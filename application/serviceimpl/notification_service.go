// application/serviceimpl/notification_service.go
package serviceimpl

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/port"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/domain/types"
)

type notificationService struct {
	publisher port.NotificationPort
}

// NewNotificationService สร้าง instance ของ NotificationService
func NewNotificationService(publisher port.NotificationPort) service.NotificationService {
	return &notificationService{publisher: publisher}
}

// publish ส่ง notification ออกทาง port - ความล้มเหลวถูก log แล้วกลืน
// mutation commit ไปแล้ว จึงห้าม propagate error กลับไปหา caller
func (s *notificationService) publish(n *dto.Notification) {
	if err := s.publisher.Publish(n); err != nil {
		log.Printf("Failed to publish notification %s for user %s: %v", n.Type, n.UserID, err)
	}
}

func (s *notificationService) newNotification(notificationType string, userID, noteID uuid.UUID, title, message string) *dto.Notification {
	return &dto.Notification{
		ID:        uuid.New(),
		Type:      notificationType,
		UserID:    userID,
		NoteID:    noteID,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
		Read:      false,
	}
}

func (s *notificationService) NotifyNoteCreated(userID, noteID uuid.UUID, noteTitle string) {
	s.publish(s.newNotification(
		dto.NotificationNoteCreated, userID, noteID,
		"Note Created",
		fmt.Sprintf("Your note %q has been created successfully.", noteTitle),
	))
}

func (s *notificationService) NotifyNoteUpdated(userID, noteID uuid.UUID, noteTitle string, changedFields []string, tagChanges *dto.TagChanges) {
	message := fmt.Sprintf("Your note %q has been updated.", noteTitle)
	if len(changedFields) > 0 {
		message = fmt.Sprintf("Your note %q has been updated (%s).", noteTitle, strings.Join(changedFields, ", "))
	}

	n := s.newNotification(dto.NotificationNoteUpdated, userID, noteID, "Note Updated", message)
	n.Metadata = types.JSONB{"changed_fields": changedFields}
	if tagChanges != nil {
		n.Metadata["tags_added"] = tagChanges.Added
		n.Metadata["tags_removed"] = tagChanges.Removed
	}
	s.publish(n)
}

func (s *notificationService) NotifyNoteArchived(userID, noteID uuid.UUID, noteTitle string) {
	s.publish(s.newNotification(
		dto.NotificationNoteArchived, userID, noteID,
		"Note Archived",
		fmt.Sprintf("Your note %q has been moved to archive.", noteTitle),
	))
}

func (s *notificationService) NotifyNoteRestored(userID, noteID uuid.UUID, noteTitle string) {
	s.publish(s.newNotification(
		dto.NotificationNoteRestored, userID, noteID,
		"Note Restored",
		fmt.Sprintf("Your note %q has been restored from archive.", noteTitle),
	))
}

func (s *notificationService) NotifyNoteReverted(userID, noteID uuid.UUID, noteTitle string, versionID uuid.UUID) {
	n := s.newNotification(
		dto.NotificationNoteReverted, userID, noteID,
		"Note Reverted",
		fmt.Sprintf("Your note %q has been reverted to a previous version.", noteTitle),
	)
	n.Metadata = types.JSONB{"version_id": versionID.String()}
	s.publish(n)
}

func (s *notificationService) NotifyVersionCreated(userID, noteID uuid.UUID, noteTitle string, versionID uuid.UUID) {
	n := s.newNotification(
		dto.NotificationVersionCreated, userID, noteID,
		"Version Saved",
		fmt.Sprintf("A new version of %q has been saved.", noteTitle),
	)
	n.Metadata = types.JSONB{"version_id": versionID.String()}
	s.publish(n)
}

func (s *notificationService) NotifyBulkArchived(userID uuid.UUID, noteIDs []uuid.UUID) {
	n := s.newNotification(
		dto.NotificationBulkArchived, userID, uuid.Nil,
		"Notes Archived",
		fmt.Sprintf("%d notes have been moved to archive.", len(noteIDs)),
	)
	n.Metadata = types.JSONB{"note_ids": noteIDs}
	s.publish(n)
}

func (s *notificationService) NotifyBulkRestored(userID uuid.UUID, noteIDs []uuid.UUID) {
	n := s.newNotification(
		dto.NotificationBulkRestored, userID, uuid.Nil,
		"Notes Restored",
		fmt.Sprintf("%d notes have been restored from archive.", len(noteIDs)),
	)
	n.Metadata = types.JSONB{"note_ids": noteIDs}
	s.publish(n)
}
