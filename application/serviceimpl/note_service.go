// application/serviceimpl/note_service.go
package serviceimpl

import (
	"github.com/google/uuid"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/domain/types"
)

type noteService struct {
	noteRepo            repository.NoteRepository
	notificationService service.NotificationService
}

// NewNoteService สร้าง instance ของ NoteService
func NewNoteService(
	noteRepo repository.NoteRepository,
	notificationService service.NotificationService,
) service.NoteService {
	return &noteService{
		noteRepo:            noteRepo,
		notificationService: notificationService,
	}
}

// getOwnedNote โหลดโน้ตและตรวจว่า actor เป็นเจ้าของ
// ลำดับการตรวจ: not found ก่อน access denied เสมอ
func (s *noteService) getOwnedNote(actorID, noteID uuid.UUID) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, types.ErrNoteNotFound
	}
	if note.OwnerID != actorID {
		return nil, types.ErrAccessDenied
	}
	return note, nil
}

// CreateNote สร้างโน้ตใหม่ของ actor
func (s *noteService) CreateNote(actorID uuid.UUID, req *dto.CreateNoteRequest) (*models.Note, error) {
	visibility := models.NoteVisibility(req.Visibility)
	if req.Visibility == "" {
		visibility = models.NoteVisibilityPrivate
	}
	if !visibility.IsValid() {
		return nil, types.ErrInvalidState
	}

	note := &models.Note{
		ID:          uuid.New(),
		OwnerID:     actorID,
		Title:       req.Title,
		Description: req.Description,
		Visibility:  visibility,
		Archived:    false,
	}

	// custom user list มีความหมายเฉพาะ visibility แบบ custom
	customUserIDs := req.CustomUserIDs
	if visibility != models.NoteVisibilityCustom {
		customUserIDs = nil
	}

	created, err := s.noteRepo.Create(note, req.TagIDs, customUserIDs)
	if err != nil {
		return nil, err
	}

	s.notificationService.NotifyNoteCreated(actorID, created.ID, created.Title)

	return created, nil
}

// GetNote อ่านโน้ตตามสิทธิ์: เจ้าของอ่านได้เสมอ, custom ต้องอยู่ในรายชื่อแชร์,
// public ให้ผู้ใช้ที่ login แล้วทุกคน โน้ตที่ archive แล้วอ่านได้เฉพาะเจ้าของ
func (s *noteService) GetNote(actorID, noteID uuid.UUID) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, types.ErrNoteNotFound
	}

	if note.OwnerID == actorID {
		return note, nil
	}

	if note.Archived {
		return nil, types.ErrAccessDenied
	}

	switch note.Visibility {
	case models.NoteVisibilityPublic:
		return note, nil
	case models.NoteVisibilityCustom:
		for _, shared := range note.SharedUsers {
			if shared.ID == actorID {
				return note, nil
			}
		}
	}

	return nil, types.ErrAccessDenied
}

// GetNotes ดึงโน้ตของเจ้าของ - ไม่รวม archived เว้นแต่ระบุ
func (s *noteService) GetNotes(ownerID uuid.UUID, includeArchived bool) ([]*models.Note, error) {
	return s.noteRepo.FindByOwnerID(ownerID, includeArchived)
}

// GetArchivedNotes ดึงโน้ตที่ archive แล้วของ actor
func (s *noteService) GetArchivedNotes(actorID uuid.UUID) ([]*models.Note, error) {
	return s.noteRepo.FindArchivedByOwnerID(actorID)
}

// GetNotesStats นับจำนวนโน้ตของ actor แยกตามสถานะ
func (s *noteService) GetNotesStats(actorID uuid.UUID) (*dto.NoteStats, error) {
	total, active, archived, err := s.noteRepo.CountByOwnerID(actorID)
	if err != nil {
		return nil, err
	}
	return &dto.NoteStats{
		Total:    total,
		Active:   active,
		Archived: archived,
	}, nil
}

// UpdateNote แก้ไขโน้ตพร้อมบันทึก version ของสถานะก่อนแก้
// field ที่เป็น nil ใน request จะไม่ถูกแตะ
func (s *noteService) UpdateNote(actorID, noteID uuid.UUID, req *dto.UpdateNoteRequest) (*models.Note, error) {
	note, err := s.getOwnedNote(actorID, noteID)
	if err != nil {
		return nil, err
	}

	changes := &repository.NoteChanges{
		Title:       req.Title,
		Description: req.Description,
		TagIDs:      req.TagIDs,
	}
	if req.Visibility != nil {
		visibility := models.NoteVisibility(*req.Visibility)
		if !visibility.IsValid() {
			return nil, types.ErrInvalidState
		}
		changes.Visibility = &visibility
	}

	// คำนวณ field ที่เปลี่ยนจริงกับ tag diff จากสถานะก่อนแก้ ไว้ใช้ตอนแจ้งเตือน
	changedFields := collectChangedFields(note, req)
	tagChanges := diffTags(note.TagIDs(), req.TagIDs)

	updated, version, err := s.noteRepo.UpdateWithVersion(noteID, actorID, changes)
	if err != nil {
		return nil, err
	}

	s.notificationService.NotifyNoteUpdated(actorID, updated.ID, updated.Title, changedFields, tagChanges)
	s.notificationService.NotifyVersionCreated(actorID, updated.ID, updated.Title, version.ID)

	return updated, nil
}

// DeleteNote ย้ายโน้ตเข้า archive (soft delete)
// archive ซ้ำเป็น no-op สำเร็จ ไม่เขียนและไม่แจ้งเตือนซ้ำ
func (s *noteService) DeleteNote(actorID, noteID uuid.UUID) error {
	note, err := s.getOwnedNote(actorID, noteID)
	if err != nil {
		return err
	}
	if note.Archived {
		return nil
	}

	if err := s.noteRepo.SetArchived(noteID, true); err != nil {
		return err
	}

	s.notificationService.NotifyNoteArchived(actorID, note.ID, note.Title)

	return nil
}

// RestoreNote นำโน้ตออกจาก archive
func (s *noteService) RestoreNote(actorID, noteID uuid.UUID) (*models.Note, error) {
	note, err := s.getOwnedNote(actorID, noteID)
	if err != nil {
		return nil, err
	}
	if !note.Archived {
		return nil, types.ErrNoteNotArchived
	}

	if err := s.noteRepo.SetArchived(noteID, false); err != nil {
		return nil, err
	}

	restored, err := s.noteRepo.GetByID(noteID)
	if err != nil {
		return nil, err
	}

	s.notificationService.NotifyNoteRestored(actorID, note.ID, note.Title)

	return restored, nil
}

// PermanentlyDeleteNote ลบโน้ตถาวรพร้อมทุก version และ association
// อนุญาตเฉพาะโน้ตที่ archive แล้วเท่านั้น
func (s *noteService) PermanentlyDeleteNote(actorID, noteID uuid.UUID) error {
	note, err := s.getOwnedNote(actorID, noteID)
	if err != nil {
		return err
	}
	if !note.Archived {
		return types.ErrNoteNotArchived
	}

	return s.noteRepo.PermanentlyDelete(noteID)
}

// BulkArchiveNotes ย้ายโน้ตหลายรายการเข้า archive แบบ all-or-nothing
func (s *noteService) BulkArchiveNotes(actorID uuid.UUID, noteIDs []uuid.UUID) error {
	if err := s.noteRepo.BulkSetArchived(actorID, noteIDs, true); err != nil {
		return err
	}

	s.notificationService.NotifyBulkArchived(actorID, noteIDs)

	return nil
}

// BulkRestoreNotes นำโน้ตหลายรายการออกจาก archive แบบ all-or-nothing
func (s *noteService) BulkRestoreNotes(actorID uuid.UUID, noteIDs []uuid.UUID) error {
	if err := s.noteRepo.BulkSetArchived(actorID, noteIDs, false); err != nil {
		return err
	}

	s.notificationService.NotifyBulkRestored(actorID, noteIDs)

	return nil
}

// RevertNoteToVersion ย้อนโน้ตกลับไปยัง version ที่เลือก
// สถานะปัจจุบันถูกเก็บเป็น revert point ก่อนเขียนทับ จึงย้อนกลับได้อีก
func (s *noteService) RevertNoteToVersion(actorID, noteID, versionID uuid.UUID) (*models.Note, error) {
	if _, err := s.getOwnedNote(actorID, noteID); err != nil {
		return nil, err
	}

	reverted, revertPoint, err := s.noteRepo.RevertToVersion(noteID, actorID, versionID)
	if err != nil {
		return nil, err
	}

	s.notificationService.NotifyNoteReverted(actorID, reverted.ID, reverted.Title, versionID)
	s.notificationService.NotifyVersionCreated(actorID, reverted.ID, reverted.Title, revertPoint.ID)

	return reverted, nil
}

// collectChangedFields เทียบ request กับสถานะก่อนแก้ คืนชื่อ field ที่ค่าเปลี่ยนจริง
func collectChangedFields(note *models.Note, req *dto.UpdateNoteRequest) []string {
	changed := []string{}
	if req.Title != nil && *req.Title != note.Title {
		changed = append(changed, "title")
	}
	if req.Description != nil && *req.Description != note.Description {
		changed = append(changed, "description")
	}
	if req.Visibility != nil && models.NoteVisibility(*req.Visibility) != note.Visibility {
		changed = append(changed, "visibility")
	}
	return changed
}

// diffTags คืนรายการ tag ที่เพิ่มและถอดเทียบกับชุดเดิม
// คืน nil เมื่อ request ไม่ได้แตะ tag เลย
func diffTags(current []uuid.UUID, requested *[]uuid.UUID) *dto.TagChanges {
	if requested == nil {
		return nil
	}

	currentSet := make(map[uuid.UUID]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	requestedSet := make(map[uuid.UUID]bool, len(*requested))
	for _, id := range *requested {
		requestedSet[id] = true
	}

	changes := &dto.TagChanges{
		Added:   []uuid.UUID{},
		Removed: []uuid.UUID{},
	}
	for id := range requestedSet {
		if !currentSet[id] {
			changes.Added = append(changes.Added, id)
		}
	}
	for _, id := range current {
		if !requestedSet[id] {
			changes.Removed = append(changes.Removed, id)
		}
	}

	if len(changes.Added) == 0 && len(changes.Removed) == 0 {
		return nil
	}
	return changes
}
