// interfaces/api/routes/note_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/handler"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/middleware"
)

// SetupNoteRoutes กำหนดเส้นทาง API สำหรับบันทึกและ version
func SetupNoteRoutes(router fiber.Router, noteHandler *handler.NoteHandler, noteVersionHandler *handler.NoteVersionHandler) {
	// Protected routes
	notes := router.Group("/notes")
	notes.Use(middleware.Protected())

	// CRUD operations
	notes.Post("/", noteHandler.CreateNote)
	notes.Get("/", noteHandler.GetNotes)

	// Special routes (ต้องมาก่อน /:id เพื่อไม่ให้ conflict)
	notes.Get("/archived", noteHandler.GetArchivedNotes)
	notes.Get("/stats", noteHandler.GetNotesStats)
	notes.Post("/bulk/archive", noteHandler.BulkArchiveNotes)
	notes.Post("/bulk/restore", noteHandler.BulkRestoreNotes)

	// Lifecycle operations (มี sub-path ต้องมาก่อน /:id เดี่ยวๆ)
	notes.Post("/:id/restore", noteHandler.RestoreNote)
	notes.Delete("/:id/permanent", noteHandler.PermanentlyDeleteNote)

	// Version และ audit log
	notes.Get("/:id/versions", noteVersionHandler.GetVersions)
	notes.Get("/:id/versions/:versionId", noteVersionHandler.GetVersionByID)
	notes.Post("/:id/versions/:versionId/revert", noteHandler.RevertNoteToVersion)
	notes.Get("/:id/audit-logs", noteVersionHandler.GetAuditLog)

	// Dynamic routes (ต้องมาหลังสุด)
	notes.Get("/:id", noteHandler.GetNote)
	notes.Put("/:id", noteHandler.UpdateNote)
	notes.Delete("/:id", noteHandler.DeleteNote)
}
