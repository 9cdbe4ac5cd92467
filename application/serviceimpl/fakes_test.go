// application/serviceimpl/fakes_test.go
package serviceimpl

import (
	"time"

	"github.com/google/uuid"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/types"
)

// fakeStore - สถานะ in-memory ที่ fake repository ทุกตัวใช้ร่วมกัน
type fakeStore struct {
	notes    map[uuid.UUID]*models.Note
	versions map[uuid.UUID][]*models.NoteVersion // noteID -> chain เรียงเก่าสุดก่อน
	tags     map[uuid.UUID]*models.Tag
	seq      int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		notes:    make(map[uuid.UUID]*models.Note),
		versions: make(map[uuid.UUID][]*models.NoteVersion),
		tags:     make(map[uuid.UUID]*models.Tag),
	}
}

func (s *fakeStore) addTag(name string) *models.Tag {
	tag := &models.Tag{ID: uuid.New(), Name: name}
	s.tags[tag.ID] = tag
	return tag
}

func (s *fakeStore) addNote(ownerID uuid.UUID, title string, archived bool, tags ...*models.Tag) *models.Note {
	note := &models.Note{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Title:      title,
		Visibility: models.NoteVisibilityPrivate,
		Archived:   archived,
		Tags:       tags,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	s.notes[note.ID] = note
	return note
}

func (s *fakeStore) appendVersion(note *models.Note, actorID uuid.UUID, isRevertPoint bool) *models.NoteVersion {
	s.seq++
	version := &models.NoteVersion{
		ID:            uuid.New(),
		NoteID:        note.ID,
		Seq:           s.seq,
		Title:         note.Title,
		Description:   note.Description,
		Visibility:    note.Visibility,
		CreatedBy:     actorID,
		TagsSnapshot:  models.NewTagSnapshots(note.Tags),
		IsRevertPoint: isRevertPoint,
		CreatedAt:     time.Now(),
	}
	s.versions[note.ID] = append(s.versions[note.ID], version)
	return version
}

// ---- fakeNoteRepository ----

type fakeNoteRepository struct {
	store *fakeStore
}

func newFakeNoteRepository(store *fakeStore) repository.NoteRepository {
	return &fakeNoteRepository{store: store}
}

func (r *fakeNoteRepository) resolveTags(tagIDs []uuid.UUID) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tag, ok := r.store.tags[id]
		if !ok {
			return nil, types.ErrTagNotFound
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *fakeNoteRepository) Create(note *models.Note, tagIDs []uuid.UUID, customUserIDs []uuid.UUID) (*models.Note, error) {
	tags, err := r.resolveTags(tagIDs)
	if err != nil {
		return nil, err
	}
	note.Tags = tags
	for _, id := range customUserIDs {
		note.SharedUsers = append(note.SharedUsers, &models.User{ID: id})
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = time.Now()
	r.store.notes[note.ID] = note
	return note, nil
}

func (r *fakeNoteRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	return r.store.notes[id], nil
}

func (r *fakeNoteRepository) FindByOwnerID(ownerID uuid.UUID, includeArchived bool) ([]*models.Note, error) {
	result := []*models.Note{}
	for _, note := range r.store.notes {
		if note.OwnerID != ownerID {
			continue
		}
		if note.Archived && !includeArchived {
			continue
		}
		result = append(result, note)
	}
	return result, nil
}

func (r *fakeNoteRepository) FindArchivedByOwnerID(ownerID uuid.UUID) ([]*models.Note, error) {
	result := []*models.Note{}
	for _, note := range r.store.notes {
		if note.OwnerID == ownerID && note.Archived {
			result = append(result, note)
		}
	}
	return result, nil
}

func (r *fakeNoteRepository) CountByOwnerID(ownerID uuid.UUID) (total, active, archived int64, err error) {
	for _, note := range r.store.notes {
		if note.OwnerID != ownerID {
			continue
		}
		total++
		if note.Archived {
			archived++
		} else {
			active++
		}
	}
	return total, active, archived, nil
}

func (r *fakeNoteRepository) SetArchived(id uuid.UUID, archived bool) error {
	note, ok := r.store.notes[id]
	if !ok {
		return types.ErrNoteNotFound
	}
	note.Archived = archived
	note.UpdatedAt = time.Now()
	return nil
}

func (r *fakeNoteRepository) UpdateWithVersion(noteID, actorID uuid.UUID, changes *repository.NoteChanges) (*models.Note, *models.NoteVersion, error) {
	note, ok := r.store.notes[noteID]
	if !ok {
		return nil, nil, types.ErrNoteNotFound
	}

	// บันทึกสถานะก่อนแก้ลง chain ก่อน แล้วค่อย apply
	version := r.store.appendVersion(note, actorID, false)

	if changes.Title != nil {
		note.Title = *changes.Title
	}
	if changes.Description != nil {
		note.Description = *changes.Description
	}
	if changes.Visibility != nil {
		note.Visibility = *changes.Visibility
	}
	if changes.TagIDs != nil {
		tags, err := r.resolveTags(*changes.TagIDs)
		if err != nil {
			// rollback: เอา version ที่เพิ่ง append ออก
			chain := r.store.versions[noteID]
			r.store.versions[noteID] = chain[:len(chain)-1]
			return nil, nil, err
		}
		note.Tags = tags
	}
	note.UpdatedAt = time.Now()

	return note, version, nil
}

func (r *fakeNoteRepository) RevertToVersion(noteID, actorID, versionID uuid.UUID) (*models.Note, *models.NoteVersion, error) {
	note, ok := r.store.notes[noteID]
	if !ok {
		return nil, nil, types.ErrNoteNotFound
	}

	var target *models.NoteVersion
	for _, v := range r.store.versions[noteID] {
		if v.ID == versionID {
			target = v
			break
		}
	}
	if target == nil {
		return nil, nil, types.ErrVersionNotFound
	}

	revertPoint := r.store.appendVersion(note, actorID, true)

	note.Title = target.Title
	note.Description = target.Description
	note.Visibility = target.Visibility

	// tag ที่ถูกลบไปแล้วถูกข้ามเงียบๆ
	tags := []*models.Tag{}
	for _, snapshot := range target.TagsSnapshot {
		if tag, ok := r.store.tags[snapshot.ID]; ok {
			tags = append(tags, tag)
		}
	}
	note.Tags = tags
	note.UpdatedAt = time.Now()

	return note, revertPoint, nil
}

func (r *fakeNoteRepository) PermanentlyDelete(id uuid.UUID) error {
	if _, ok := r.store.notes[id]; !ok {
		return types.ErrNoteNotFound
	}
	delete(r.store.notes, id)
	delete(r.store.versions, id)
	return nil
}

func (r *fakeNoteRepository) BulkSetArchived(ownerID uuid.UUID, ids []uuid.UUID, archived bool) error {
	// ตรวจทั้ง batch ก่อนเขียนแถวใดๆ
	for _, id := range ids {
		note, ok := r.store.notes[id]
		if !ok || note.OwnerID != ownerID || note.Archived == archived {
			return types.ErrAccessDenied
		}
	}
	for _, id := range ids {
		r.store.notes[id].Archived = archived
		r.store.notes[id].UpdatedAt = time.Now()
	}
	return nil
}

// ---- fakeNoteVersionRepository ----

type fakeNoteVersionRepository struct {
	store *fakeStore
}

func newFakeNoteVersionRepository(store *fakeStore) repository.NoteVersionRepository {
	return &fakeNoteVersionRepository{store: store}
}

func (r *fakeNoteVersionRepository) FindByNoteID(noteID uuid.UUID) ([]*models.NoteVersion, error) {
	chain := r.store.versions[noteID]
	result := make([]*models.NoteVersion, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		result = append(result, chain[i])
	}
	return result, nil
}

func (r *fakeNoteVersionRepository) GetByID(noteID, versionID uuid.UUID) (*models.NoteVersion, error) {
	for _, v := range r.store.versions[noteID] {
		if v.ID == versionID {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteVersionRepository) CountByNoteID(noteID uuid.UUID) (int64, error) {
	return int64(len(r.store.versions[noteID])), nil
}

// ---- notificationRecorder ----

// notificationRecorder เก็บ notification ที่ถูกยิงไว้ให้ assert
type notificationRecorder struct {
	events        []string
	changedFields []string
	tagChanges    *dto.TagChanges
}

func (n *notificationRecorder) NotifyNoteCreated(userID, noteID uuid.UUID, noteTitle string) {
	n.events = append(n.events, dto.NotificationNoteCreated)
}

func (n *notificationRecorder) NotifyNoteUpdated(userID, noteID uuid.UUID, noteTitle string, changedFields []string, tagChanges *dto.TagChanges) {
	n.events = append(n.events, dto.NotificationNoteUpdated)
	n.changedFields = changedFields
	n.tagChanges = tagChanges
}

func (n *notificationRecorder) NotifyNoteArchived(userID, noteID uuid.UUID, noteTitle string) {
	n.events = append(n.events, dto.NotificationNoteArchived)
}

func (n *notificationRecorder) NotifyNoteRestored(userID, noteID uuid.UUID, noteTitle string) {
	n.events = append(n.events, dto.NotificationNoteRestored)
}

func (n *notificationRecorder) NotifyNoteReverted(userID, noteID uuid.UUID, noteTitle string, versionID uuid.UUID) {
	n.events = append(n.events, dto.NotificationNoteReverted)
}

func (n *notificationRecorder) NotifyVersionCreated(userID, noteID uuid.UUID, noteTitle string, versionID uuid.UUID) {
	n.events = append(n.events, dto.NotificationVersionCreated)
}

func (n *notificationRecorder) NotifyBulkArchived(userID uuid.UUID, noteIDs []uuid.UUID) {
	n.events = append(n.events, dto.NotificationBulkArchived)
}

func (n *notificationRecorder) NotifyBulkRestored(userID uuid.UUID, noteIDs []uuid.UUID) {
	n.events = append(n.events, dto.NotificationBulkRestored)
}
