// application/serviceimpl/note_service_test.go
package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/types"
)

func strPtr(s string) *string {
	return &s
}

func setupNoteService() (*fakeStore, *notificationRecorder, *noteService) {
	store := newFakeStore()
	recorder := &notificationRecorder{}
	svc := NewNoteService(newFakeNoteRepository(store), recorder).(*noteService)
	return store, recorder, svc
}

func TestCreateNote(t *testing.T) {
	store, recorder, svc := setupNoteService()
	ownerID := uuid.New()
	tag := store.addTag("work")

	note, err := svc.CreateNote(ownerID, &dto.CreateNoteRequest{
		Title:      "Shopping list",
		Visibility: "private",
		TagIDs:     []uuid.UUID{tag.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, ownerID, note.OwnerID)
	assert.False(t, note.Archived)
	assert.Len(t, note.Tags, 1)
	assert.Equal(t, []string{dto.NotificationNoteCreated}, recorder.events)

	// การสร้างไม่เริ่ม version chain
	assert.Empty(t, store.versions[note.ID])
}

func TestCreateNoteDefaultsToPrivate(t *testing.T) {
	_, _, svc := setupNoteService()

	note, err := svc.CreateNote(uuid.New(), &dto.CreateNoteRequest{Title: "Untitled"})
	require.NoError(t, err)
	assert.Equal(t, models.NoteVisibilityPrivate, note.Visibility)
}

func TestCreateNoteUnknownTag(t *testing.T) {
	_, _, svc := setupNoteService()

	_, err := svc.CreateNote(uuid.New(), &dto.CreateNoteRequest{
		Title:  "Shopping list",
		TagIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, types.ErrTagNotFound)
}

func TestGetNoteVisibility(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()
	strangerID := uuid.New()
	sharedID := uuid.New()

	private := store.addNote(ownerID, "private note", false)

	public := store.addNote(ownerID, "public note", false)
	public.Visibility = models.NoteVisibilityPublic

	custom := store.addNote(ownerID, "custom note", false)
	custom.Visibility = models.NoteVisibilityCustom
	custom.SharedUsers = []*models.User{{ID: sharedID}}

	// เจ้าของอ่านได้เสมอ
	_, err := svc.GetNote(ownerID, private.ID)
	assert.NoError(t, err)

	// private ปิดสำหรับคนอื่น
	_, err = svc.GetNote(strangerID, private.ID)
	assert.ErrorIs(t, err, types.ErrAccessDenied)

	// public เปิดให้ทุกคนที่ login
	_, err = svc.GetNote(strangerID, public.ID)
	assert.NoError(t, err)

	// custom เปิดเฉพาะรายชื่อที่แชร์
	_, err = svc.GetNote(sharedID, custom.ID)
	assert.NoError(t, err)
	_, err = svc.GetNote(strangerID, custom.ID)
	assert.ErrorIs(t, err, types.ErrAccessDenied)
}

func TestGetNoteArchivedHiddenFromNonOwner(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()

	note := store.addNote(ownerID, "old note", true)
	note.Visibility = models.NoteVisibilityPublic

	_, err := svc.GetNote(ownerID, note.ID)
	assert.NoError(t, err)

	_, err = svc.GetNote(uuid.New(), note.ID)
	assert.ErrorIs(t, err, types.ErrAccessDenied)
}

func TestGetNoteNotFound(t *testing.T) {
	_, _, svc := setupNoteService()

	_, err := svc.GetNote(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, types.ErrNoteNotFound)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateNoteAppendsVersionOfPreviousState(t *testing.T) {
	store, recorder, svc := setupNoteService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)

	updated, err := svc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{
		Title: strPtr("Final"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)

	// version เก็บสถานะก่อนแก้ ไม่ใช่สถานะใหม่
	chain := store.versions[note.ID]
	require.Len(t, chain, 1)
	assert.Equal(t, "Draft", chain[0].Title)
	assert.False(t, chain[0].IsRevertPoint)
	assert.Equal(t, ownerID, chain[0].CreatedBy)

	assert.Equal(t, []string{dto.NotificationNoteUpdated, dto.NotificationVersionCreated}, recorder.events)
	assert.Equal(t, []string{"title"}, recorder.changedFields)
}

func TestUpdateNotePartialFieldsUntouched(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)
	note.Description = "keep me"

	updated, err := svc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{
		Title: strPtr("Final"),
	})
	require.NoError(t, err)
	assert.Equal(t, "keep me", updated.Description)
}

func TestUpdateNoteTagChanges(t *testing.T) {
	store, recorder, svc := setupNoteService()
	ownerID := uuid.New()
	work := store.addTag("work")
	home := store.addTag("home")
	note := store.addNote(ownerID, "Draft", false, work)

	_, err := svc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{
		TagIDs: &[]uuid.UUID{home.ID},
	})
	require.NoError(t, err)

	require.NotNil(t, recorder.tagChanges)
	assert.Equal(t, []uuid.UUID{home.ID}, recorder.tagChanges.Added)
	assert.Equal(t, []uuid.UUID{work.ID}, recorder.tagChanges.Removed)
}

func TestUpdateNoteAccessChecks(t *testing.T) {
	store, _, svc := setupNoteService()
	note := store.addNote(uuid.New(), "Draft", false)

	_, err := svc.UpdateNote(uuid.New(), note.ID, &dto.UpdateNoteRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, types.ErrAccessDenied)

	_, err = svc.UpdateNote(uuid.New(), uuid.New(), &dto.UpdateNoteRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, types.ErrNoteNotFound)
}

func TestDeleteNoteArchives(t *testing.T) {
	store, recorder, svc := setupNoteService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)

	require.NoError(t, svc.DeleteNote(ownerID, note.ID))
	assert.True(t, store.notes[note.ID].Archived)
	assert.Equal(t, []string{dto.NotificationNoteArchived}, recorder.events)

	// archive ซ้ำเป็น no-op - ไม่ error และไม่แจ้งเตือนเพิ่ม
	require.NoError(t, svc.DeleteNote(ownerID, note.ID))
	assert.True(t, store.notes[note.ID].Archived)
	assert.Equal(t, []string{dto.NotificationNoteArchived}, recorder.events)
}

func TestRestoreNote(t *testing.T) {
	store, recorder, svc := setupNoteService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", true)

	restored, err := svc.RestoreNote(ownerID, note.ID)
	require.NoError(t, err)
	assert.False(t, restored.Archived)
	assert.Equal(t, []string{dto.NotificationNoteRestored}, recorder.events)
}

func TestRestoreNoteNotArchived(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)

	_, err := svc.RestoreNote(ownerID, note.ID)
	assert.ErrorIs(t, err, types.ErrNoteNotArchived)
	assert.ErrorIs(t, err, types.ErrInvalidState)
}

func TestPermanentlyDeleteNote(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", true)
	store.appendVersion(note, ownerID, false)

	require.NoError(t, svc.PermanentlyDeleteNote(ownerID, note.ID))
	assert.Nil(t, store.notes[note.ID])
	assert.Empty(t, store.versions[note.ID])
}

func TestPermanentlyDeleteRequiresArchived(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)

	err := svc.PermanentlyDeleteNote(ownerID, note.ID)
	assert.ErrorIs(t, err, types.ErrNoteNotArchived)
	assert.NotNil(t, store.notes[note.ID])
}

func TestBulkArchiveAllOrNothing(t *testing.T) {
	store, recorder, svc := setupNoteService()
	ownerID := uuid.New()
	first := store.addNote(ownerID, "first", false)
	second := store.addNote(ownerID, "second", false)
	alreadyArchived := store.addNote(ownerID, "third", true)

	// รายการเดียวไม่ผ่าน - ทั้ง batch ต้องไม่ถูกแตะ
	err := svc.BulkArchiveNotes(ownerID, []uuid.UUID{first.ID, alreadyArchived.ID})
	assert.ErrorIs(t, err, types.ErrAccessDenied)
	assert.False(t, store.notes[first.ID].Archived)
	assert.Empty(t, recorder.events)

	require.NoError(t, svc.BulkArchiveNotes(ownerID, []uuid.UUID{first.ID, second.ID}))
	assert.True(t, store.notes[first.ID].Archived)
	assert.True(t, store.notes[second.ID].Archived)
	assert.Equal(t, []string{dto.NotificationBulkArchived}, recorder.events)
}

func TestBulkRestoreRejectsForeignNote(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()
	mine := store.addNote(ownerID, "mine", true)
	theirs := store.addNote(uuid.New(), "theirs", true)

	err := svc.BulkRestoreNotes(ownerID, []uuid.UUID{mine.ID, theirs.ID})
	assert.ErrorIs(t, err, types.ErrAccessDenied)
	assert.True(t, store.notes[mine.ID].Archived)
}

func TestRevertNoteToVersion(t *testing.T) {
	store, recorder, svc := setupNoteService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)

	// update สร้าง version ของ "Draft"
	_, err := svc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{Title: strPtr("Final")})
	require.NoError(t, err)
	draftVersion := store.versions[note.ID][0]

	reverted, err := svc.RevertNoteToVersion(ownerID, note.ID, draftVersion.ID)
	require.NoError(t, err)
	assert.Equal(t, "Draft", reverted.Title)

	// สถานะ "Final" ถูกเก็บเป็น revert point ก่อนเขียนทับ จึงย้อนกลับได้อีก
	chain := store.versions[note.ID]
	require.Len(t, chain, 2)
	assert.Equal(t, "Final", chain[1].Title)
	assert.True(t, chain[1].IsRevertPoint)

	assert.Contains(t, recorder.events, dto.NotificationNoteReverted)
}

func TestRevertUnknownVersion(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)

	_, err := svc.RevertNoteToVersion(ownerID, note.ID, uuid.New())
	assert.ErrorIs(t, err, types.ErrVersionNotFound)
}

func TestRevertOwnerOnly(t *testing.T) {
	store, _, svc := setupNoteService()
	note := store.addNote(uuid.New(), "Draft", false)

	_, err := svc.RevertNoteToVersion(uuid.New(), note.ID, uuid.New())
	assert.ErrorIs(t, err, types.ErrAccessDenied)
}

func TestRevertSkipsDeletedTags(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()
	work := store.addTag("work")
	home := store.addTag("home")
	note := store.addNote(ownerID, "Draft", false, work, home)

	_, err := svc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{TagIDs: &[]uuid.UUID{}})
	require.NoError(t, err)
	snapshotVersion := store.versions[note.ID][0]
	require.Len(t, snapshotVersion.TagsSnapshot, 2)

	// tag ถูกลบจากระบบหลัง snapshot ถูกเก็บ
	delete(store.tags, work.ID)

	reverted, err := svc.RevertNoteToVersion(ownerID, note.ID, snapshotVersion.ID)
	require.NoError(t, err)
	require.Len(t, reverted.Tags, 1)
	assert.Equal(t, home.ID, reverted.Tags[0].ID)
}

func TestGetNotesStats(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()
	store.addNote(ownerID, "a", false)
	store.addNote(ownerID, "b", false)
	store.addNote(ownerID, "c", true)
	store.addNote(uuid.New(), "d", false)

	stats, err := svc.GetNotesStats(ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Active)
	assert.Equal(t, int64(1), stats.Archived)
}

func TestGetNotesExcludesArchivedByDefault(t *testing.T) {
	store, _, svc := setupNoteService()
	ownerID := uuid.New()
	store.addNote(ownerID, "active", false)
	store.addNote(ownerID, "archived", true)

	notes, err := svc.GetNotes(ownerID, false)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	notes, err = svc.GetNotes(ownerID, true)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}
