// infrastructure/persistence/postgres/note_repository.go
package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository สร้าง instance ใหม่ของ NoteRepository
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create สร้างบันทึกพร้อม association ของ tag และ custom user ใน transaction เดียว
func (r *noteRepository) Create(note *models.Note, tagIDs []uuid.UUID, customUserIDs []uuid.UUID) (*models.Note, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if ids := dedupeIDs(tagIDs); len(ids) > 0 {
			var tags []*models.Tag
			if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
				return err
			}
			if len(tags) != len(ids) {
				return types.ErrTagNotFound
			}
			note.Tags = tags
		}

		// บันทึก sharing เฉพาะเมื่อ visibility เป็น custom
		if note.Visibility == models.NoteVisibilityCustom {
			if ids := dedupeIDs(customUserIDs); len(ids) > 0 {
				var users []*models.User
				if err := tx.Where("id IN ?", ids).Find(&users).Error; err != nil {
					return err
				}
				if len(users) != len(ids) {
					return types.ErrUserNotFound
				}
				note.SharedUsers = users
			}
		}

		return tx.Create(note).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(note.ID)
}

// GetByID ดึงข้อมูลบันทึกพร้อม tags และ shared users - คืน nil ถ้าไม่พบ
func (r *noteRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.Preload("Tags").Preload("SharedUsers").
		Where("id = ?", id).First(&note).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// FindByOwnerID ดึงรายการบันทึกของเจ้าของ เรียงตาม updated_at
func (r *noteRepository) FindByOwnerID(ownerID uuid.UUID, includeArchived bool) ([]*models.Note, error) {
	var notes []*models.Note

	query := r.db.Preload("Tags").Where("owner_id = ?", ownerID)
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}

	if err := query.Order("updated_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

// FindArchivedByOwnerID ดึงเฉพาะบันทึกที่ถูก archive
func (r *noteRepository) FindArchivedByOwnerID(ownerID uuid.UUID) ([]*models.Note, error) {
	var notes []*models.Note

	err := r.db.Preload("Tags").
		Where("owner_id = ? AND archived = ?", ownerID, true).
		Order("updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// CountByOwnerID นับจำนวนบันทึกแยกตามสถานะ
func (r *noteRepository) CountByOwnerID(ownerID uuid.UUID) (total, active, archived int64, err error) {
	if err = r.db.Model(&models.Note{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return 0, 0, 0, err
	}

	if err = r.db.Model(&models.Note{}).
		Where("owner_id = ? AND archived = ?", ownerID, true).
		Count(&archived).Error; err != nil {
		return 0, 0, 0, err
	}

	active = total - archived
	return total, active, archived, nil
}

// SetArchived ตั้งค่า archived flag และ stamp updated_at
func (r *noteRepository) SetArchived(id uuid.UUID, archived bool) error {
	return r.db.Model(&models.Note{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"archived":   archived,
			"updated_at": time.Now(),
		}).Error
}

// UpdateWithVersion ทำ read-append-write ใน transaction เดียว
// snapshot ถูกสร้างจากสถานะที่อ่านภายใต้ row lock - สอง update พร้อมกัน
// บน note เดียวกันจึงไม่มีทางอ่าน "before" ชุดเดียวกันได้
func (r *noteRepository) UpdateWithVersion(noteID, actorID uuid.UUID, changes *repository.NoteChanges) (*models.Note, *models.NoteVersion, error) {
	var version *models.NoteVersion

	err := r.db.Transaction(func(tx *gorm.DB) error {
		note, currentTags, err := lockNote(tx, noteID)
		if err != nil {
			return err
		}

		// append สถานะก่อนแก้ลง version chain ก่อนเขียนทับเสมอ
		version = &models.NoteVersion{
			NoteID:        note.ID,
			Title:         note.Title,
			Description:   note.Description,
			Visibility:    note.Visibility,
			CreatedBy:     actorID,
			TagsSnapshot:  models.NewTagSnapshots(currentTags),
			IsRevertPoint: false,
		}
		if err := tx.Create(version).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{"updated_at": time.Now()}
		if changes.Title != nil {
			updates["title"] = *changes.Title
		}
		if changes.Description != nil {
			updates["description"] = *changes.Description
		}
		if changes.Visibility != nil {
			updates["visibility"] = *changes.Visibility
		}
		if err := tx.Model(note).Updates(updates).Error; err != nil {
			return err
		}

		// รายการ tag ที่ส่งมาแทนที่ชุดปัจจุบันทั้งหมด ไม่ใช่ merge
		if changes.TagIDs != nil {
			ids := dedupeIDs(*changes.TagIDs)
			tags := []*models.Tag{}
			if len(ids) > 0 {
				if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
					return err
				}
				if len(tags) != len(ids) {
					return types.ErrTagNotFound
				}
			}
			if err := tx.Model(note).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	note, err := r.GetByID(noteID)
	if err != nil {
		return nil, nil, err
	}
	return note, version, nil
}

// RevertToVersion คืนบันทึกไปยังสถานะของ version เป้าหมายใน transaction เดียว
func (r *noteRepository) RevertToVersion(noteID, actorID, versionID uuid.UUID) (*models.Note, *models.NoteVersion, error) {
	var revertPoint *models.NoteVersion

	err := r.db.Transaction(func(tx *gorm.DB) error {
		note, currentTags, err := lockNote(tx, noteID)
		if err != nil {
			return err
		}

		var target models.NoteVersion
		err = tx.Where("id = ? AND note_id = ?", versionID, noteID).First(&target).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.ErrVersionNotFound
		}
		if err != nil {
			return err
		}

		// snapshot สถานะปัจจุบันเป็น revert point ก่อน - ไม่มี version ใดถูกลบ
		revertPoint = &models.NoteVersion{
			NoteID:        note.ID,
			Title:         note.Title,
			Description:   note.Description,
			Visibility:    note.Visibility,
			CreatedBy:     actorID,
			TagsSnapshot:  models.NewTagSnapshots(currentTags),
			IsRevertPoint: true,
		}
		if err := tx.Create(revertPoint).Error; err != nil {
			return err
		}

		// สร้าง association ใหม่จาก snapshot - tag ที่ถูกลบไปแล้วถูกข้ามเงียบๆ
		tags := []*models.Tag{}
		if ids := target.TagsSnapshot.IDs(); len(ids) > 0 {
			if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(note).Association("Tags").Replace(tags); err != nil {
			return err
		}

		return tx.Model(note).Updates(map[string]interface{}{
			"title":       target.Title,
			"description": target.Description,
			"visibility":  target.Visibility,
			"updated_at":  time.Now(),
		}).Error
	})
	if err != nil {
		return nil, nil, err
	}

	note, err := r.GetByID(noteID)
	if err != nil {
		return nil, nil, err
	}
	return note, revertPoint, nil
}

// PermanentlyDelete ลบ note และทุกตารางลูกใน transaction เดียว
// ห้ามเหลือแถว orphan ใน note_tags, note_users หรือ note_versions
func (r *noteRepository) PermanentlyDelete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM note_tags WHERE note_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM note_users WHERE note_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", id).Delete(&models.NoteVersion{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Note{}).Error
	})
}

// BulkSetArchived ตรวจเงื่อนไขของทั้ง batch ภายใต้ lock ก่อนเขียนแถวใดๆ
func (r *noteRepository) BulkSetArchived(ownerID uuid.UUID, ids []uuid.UUID, archived bool) error {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var notes []*models.Note
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", ids).
			Find(&notes).Error
		if err != nil {
			return err
		}

		// ทุก id ต้องมีอยู่ เป็นของผู้กระทำ และอยู่ในสถานะตรงข้ามกับเป้าหมาย
		// รายการเดียวไม่ผ่าน = ทั้ง batch ถูกปฏิเสธโดยไม่เขียนอะไรเลย
		if len(notes) != len(ids) {
			return types.ErrAccessDenied
		}
		for _, note := range notes {
			if note.OwnerID != ownerID || note.Archived == archived {
				return types.ErrAccessDenied
			}
		}

		return tx.Model(&models.Note{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"archived":   archived,
				"updated_at": time.Now(),
			}).Error
	})
}

// lockNote อ่าน note พร้อมชุด tag ปัจจุบันภายใต้ SELECT ... FOR UPDATE
func lockNote(tx *gorm.DB, noteID uuid.UUID) (*models.Note, []*models.Tag, error) {
	var note models.Note
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", noteID).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, types.ErrNoteNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	var tags []*models.Tag
	if err := tx.Model(&note).Association("Tags").Find(&tags); err != nil {
		return nil, nil, err
	}

	return &note, tags, nil
}

// dedupeIDs ตัด id ซ้ำออกโดยคงลำดับเดิม
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
