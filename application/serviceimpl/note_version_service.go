// application/serviceimpl/note_version_service.go
package serviceimpl

import (
	"github.com/google/uuid"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/domain/types"
)

type noteVersionService struct {
	noteRepo    repository.NoteRepository
	versionRepo repository.NoteVersionRepository
}

// NewNoteVersionService สร้าง instance ของ NoteVersionService
func NewNoteVersionService(
	noteRepo repository.NoteRepository,
	versionRepo repository.NoteVersionRepository,
) service.NoteVersionService {
	return &noteVersionService{
		noteRepo:    noteRepo,
		versionRepo: versionRepo,
	}
}

// getOwnedNote โหลดโน้ตและตรวจว่า actor เป็นเจ้าของ
// ประวัติ version เปิดให้เจ้าของเท่านั้น ไม่ตามสิทธิ์แชร์
func (s *noteVersionService) getOwnedNote(actorID, noteID uuid.UUID) (*models.Note, error) {
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

// GetVersions ดึงประวัติ version ของโน้ต เรียงใหม่สุดก่อน
func (s *noteVersionService) GetVersions(actorID, noteID uuid.UUID) ([]*models.NoteVersion, error) {
	if _, err := s.getOwnedNote(actorID, noteID); err != nil {
		return nil, err
	}

	return s.versionRepo.FindByNoteID(noteID)
}

// GetVersionByID ดึง version เดียวของโน้ต
func (s *noteVersionService) GetVersionByID(actorID, noteID, versionID uuid.UUID) (*dto.NoteVersionResponse, error) {
	if _, err := s.getOwnedNote(actorID, noteID); err != nil {
		return nil, err
	}

	version, err := s.versionRepo.GetByID(noteID, versionID)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, types.ErrVersionNotFound
	}

	return toVersionResponse(version), nil
}

// GetAuditLog สร้าง audit log จาก version chain ณ เวลาที่ถูกเรียก
// ไม่มีตาราง audit แยก แต่ละ entry คือผลต่างระหว่าง version กับตัวก่อนหน้า
// entry เก่าสุดไม่มีตัวก่อนหน้า ฝั่ง From จึงเป็น null
func (s *noteVersionService) GetAuditLog(actorID, noteID uuid.UUID) ([]*dto.AuditLogEntry, error) {
	note, err := s.getOwnedNote(actorID, noteID)
	if err != nil {
		return nil, err
	}

	// versions เรียงใหม่สุดก่อน ตัวก่อนหน้าตามเวลาคือ index ถัดไป
	versions, err := s.versionRepo.FindByNoteID(noteID)
	if err != nil {
		return nil, err
	}

	entries := make([]*dto.AuditLogEntry, 0, len(versions))
	for i, version := range versions {
		var previous *models.NoteVersion
		if i+1 < len(versions) {
			previous = versions[i+1]
		}

		action := dto.AuditActionUpdated
		if version.IsRevertPoint {
			action = dto.AuditActionReverted
		}

		entries = append(entries, &dto.AuditLogEntry{
			ID:            version.ID,
			Action:        action,
			Timestamp:     version.CreatedAt,
			UserID:        version.CreatedBy,
			NoteID:        version.NoteID,
			NoteTitle:     note.Title,
			Changes:       diffVersions(previous, version),
			VersionID:     version.ID,
			IsRevertPoint: version.IsRevertPoint,
		})
	}
	return entries, nil
}

// diffVersions เทียบ version กับตัวก่อนหน้า field ต่อ field
// ทุก field ถูกแสดงเสมอ - previous เป็น nil สำหรับ version แรกสุด ฝั่ง From จึงเป็น null
func diffVersions(previous, current *models.NoteVersion) dto.AuditChanges {
	if previous == nil {
		return dto.AuditChanges{
			Title:       dto.FieldChange{From: nil, To: current.Title},
			Description: dto.FieldChange{From: nil, To: current.Description},
			Visibility:  dto.FieldChange{From: nil, To: string(current.Visibility)},
		}
	}

	title := previous.Title
	description := previous.Description
	visibility := string(previous.Visibility)
	return dto.AuditChanges{
		Title:       dto.FieldChange{From: &title, To: current.Title},
		Description: dto.FieldChange{From: &description, To: current.Description},
		Visibility:  dto.FieldChange{From: &visibility, To: string(current.Visibility)},
	}
}

// toVersionResponse แปลง model เป็น response DTO
func toVersionResponse(version *models.NoteVersion) *dto.NoteVersionResponse {
	return &dto.NoteVersionResponse{
		ID:            version.ID,
		NoteID:        version.NoteID,
		Title:         version.Title,
		Description:   version.Description,
		Visibility:    string(version.Visibility),
		CreatedBy:     version.CreatedBy,
		Tags:          version.TagsSnapshot,
		IsRevertPoint: version.IsRevertPoint,
		CreatedAt:     version.CreatedAt,
	}
}
