// application/serviceimpl/note_version_service_test.go
package serviceimpl

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/types"
)

func setupVersionService() (*fakeStore, *noteService, *noteVersionService) {
	store := newFakeStore()
	noteRepo := newFakeNoteRepository(store)
	noteSvc := NewNoteService(noteRepo, &notificationRecorder{}).(*noteService)
	versionSvc := NewNoteVersionService(noteRepo, newFakeNoteVersionRepository(store)).(*noteVersionService)
	return store, noteSvc, versionSvc
}

func TestGetVersionsNewestFirst(t *testing.T) {
	store, noteSvc, versionSvc := setupVersionService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "v1", false)

	_, err := noteSvc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{Title: strPtr("v2")})
	require.NoError(t, err)
	_, err = noteSvc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{Title: strPtr("v3")})
	require.NoError(t, err)

	versions, err := versionSvc.GetVersions(ownerID, note.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, "v2", versions[0].Title)
	assert.Equal(t, "v1", versions[1].Title)
}

func TestGetVersionsOwnerOnly(t *testing.T) {
	store, _, versionSvc := setupVersionService()
	note := store.addNote(uuid.New(), "v1", false)

	_, err := versionSvc.GetVersions(uuid.New(), note.ID)
	assert.ErrorIs(t, err, types.ErrAccessDenied)

	_, err = versionSvc.GetVersions(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, types.ErrNoteNotFound)
}

func TestGetVersionByID(t *testing.T) {
	store, noteSvc, versionSvc := setupVersionService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "v1", false)

	_, err := noteSvc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{Title: strPtr("v2")})
	require.NoError(t, err)
	stored := store.versions[note.ID][0]

	version, err := versionSvc.GetVersionByID(ownerID, note.ID, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", version.Title)

	_, err = versionSvc.GetVersionByID(ownerID, note.ID, uuid.New())
	assert.ErrorIs(t, err, types.ErrVersionNotFound)
}

// จำลองวงจรแก้-ย้อนเต็มรูป: สร้าง "Draft" แก้เป็น "Final" แล้ว revert กลับ
// audit log ต้องเล่าเหตุการณ์ครบทั้งสองรายการพร้อม diff ที่ถูกต้อง
func TestAuditLogUpdateThenRevert(t *testing.T) {
	store, noteSvc, versionSvc := setupVersionService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)

	_, err := noteSvc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{Title: strPtr("Final")})
	require.NoError(t, err)
	draftVersion := store.versions[note.ID][0]

	_, err = noteSvc.RevertNoteToVersion(ownerID, note.ID, draftVersion.ID)
	require.NoError(t, err)

	entries, err := versionSvc.GetAuditLog(ownerID, note.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// entry ใหม่สุดคือ revert point ที่เก็บสถานะ "Final" ไว้
	revertEntry := entries[0]
	assert.Equal(t, dto.AuditActionReverted, revertEntry.Action)
	assert.True(t, revertEntry.IsRevertPoint)
	require.NotNil(t, revertEntry.Changes.Title.From)
	assert.Equal(t, "Draft", *revertEntry.Changes.Title.From)
	assert.Equal(t, "Final", revertEntry.Changes.Title.To)

	// entry เก่าสุดไม่มี predecessor - From เป็น nil ทุก field
	firstEntry := entries[1]
	assert.Equal(t, dto.AuditActionUpdated, firstEntry.Action)
	assert.Nil(t, firstEntry.Changes.Title.From)
	assert.Equal(t, "Draft", firstEntry.Changes.Title.To)
	assert.Nil(t, firstEntry.Changes.Description.From)
	assert.Nil(t, firstEntry.Changes.Visibility.From)

	// note ปัจจุบันกลับไปเป็น Draft แล้ว
	assert.Equal(t, "Draft", store.notes[note.ID].Title)
}

func TestAuditLogEmitsEveryFieldOnEachEntry(t *testing.T) {
	store, noteSvc, versionSvc := setupVersionService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)
	note.Description = "same"

	_, err := noteSvc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{Title: strPtr("v2")})
	require.NoError(t, err)
	_, err = noteSvc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{Title: strPtr("v3")})
	require.NoError(t, err)

	entries, err := versionSvc.GetAuditLog(ownerID, note.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// version ติดกันต่างแค่ title - field ที่ไม่เปลี่ยนยังต้องโผล่ใน diff (from = to)
	newest := entries[0]
	require.NotNil(t, newest.Changes.Title.From)
	assert.Equal(t, "Draft", *newest.Changes.Title.From)
	assert.Equal(t, "v2", newest.Changes.Title.To)
	require.NotNil(t, newest.Changes.Description.From)
	assert.Equal(t, "same", *newest.Changes.Description.From)
	assert.Equal(t, "same", newest.Changes.Description.To)
	require.NotNil(t, newest.Changes.Visibility.From)
	assert.Equal(t, newest.Changes.Visibility.To, *newest.Changes.Visibility.From)
}

func TestAuditLogEmptyChain(t *testing.T) {
	store, _, versionSvc := setupVersionService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)

	entries, err := versionSvc.GetAuditLog(ownerID, note.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// audit log เป็น projection ล้วนๆ - เรียกกี่ครั้งผลต้องเหมือนเดิม
func TestAuditLogDeterministic(t *testing.T) {
	store, noteSvc, versionSvc := setupVersionService()
	ownerID := uuid.New()
	note := store.addNote(ownerID, "Draft", false)

	_, err := noteSvc.UpdateNote(ownerID, note.ID, &dto.UpdateNoteRequest{Title: strPtr("Final")})
	require.NoError(t, err)

	first, err := versionSvc.GetAuditLog(ownerID, note.ID)
	require.NoError(t, err)
	second, err := versionSvc.GetAuditLog(ownerID, note.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
