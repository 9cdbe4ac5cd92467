// interfaces/api/handler/note_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/middleware"
	"github.com/thizplus/gofiber-notes-api/pkg/utils"
	"github.com/thizplus/gofiber-notes-api/pkg/validator"
)

type NoteHandler struct {
	noteService service.NoteService
}

func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// CreateNote สร้างบันทึกใหม่
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid request body: "+err.Error())
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	note, err := h.noteService.CreateNote(userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Note created successfully",
		"data":    note,
	})
}

// GetNotes ดึงรายการบันทึกของผู้ใช้
// query parameter include_archived=true จะรวมบันทึกที่ archive แล้วด้วย
func (h *NoteHandler) GetNotes(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	notes, err := h.noteService.GetNotes(userID, c.QueryBool("include_archived"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    notes,
	})
}

// GetArchivedNotes ดึงรายการบันทึกที่ archive แล้วของผู้ใช้
func (h *NoteHandler) GetArchivedNotes(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	notes, err := h.noteService.GetArchivedNotes(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    notes,
	})
}

// GetNotesStats ดึงจำนวนบันทึกแยกตามสถานะ
func (h *NoteHandler) GetNotesStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	stats, err := h.noteService.GetNotesStats(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetNote ดึงบันทึกเฉพาะรายการ
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid note ID: "+err.Error())
	}

	note, err := h.noteService.GetNote(userID, noteID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    note,
	})
}

// UpdateNote อัปเดตบันทึกแบบ partial - ทุกครั้งที่แก้จะเกิด version ใหม่
func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid note ID: "+err.Error())
	}

	var req dto.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid request body: "+err.Error())
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	note, err := h.noteService.UpdateNote(userID, noteID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note updated successfully",
		"data":    note,
	})
}

// DeleteNote ย้ายบันทึกเข้า archive (soft delete)
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid note ID: "+err.Error())
	}

	if err := h.noteService.DeleteNote(userID, noteID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note archived successfully",
	})
}

// RestoreNote นำบันทึกออกจาก archive
func (h *NoteHandler) RestoreNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid note ID: "+err.Error())
	}

	note, err := h.noteService.RestoreNote(userID, noteID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note restored successfully",
		"data":    note,
	})
}

// PermanentlyDeleteNote ลบบันทึกถาวร - ใช้ได้เฉพาะบันทึกที่ archive แล้ว
func (h *NoteHandler) PermanentlyDeleteNote(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid note ID: "+err.Error())
	}

	if err := h.noteService.PermanentlyDeleteNote(userID, noteID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note permanently deleted",
	})
}

// BulkArchiveNotes ย้ายบันทึกหลายรายการเข้า archive แบบ all-or-nothing
func (h *NoteHandler) BulkArchiveNotes(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req dto.BulkNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid request body: "+err.Error())
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	if err := h.noteService.BulkArchiveNotes(userID, req.NoteIDs); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notes archived successfully",
		"data":    fiber.Map{"archived_count": len(req.NoteIDs)},
	})
}

// BulkRestoreNotes นำบันทึกหลายรายการออกจาก archive แบบ all-or-nothing
func (h *NoteHandler) BulkRestoreNotes(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req dto.BulkNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid request body: "+err.Error())
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	if err := h.noteService.BulkRestoreNotes(userID, req.NoteIDs); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notes restored successfully",
		"data":    fiber.Map{"restored_count": len(req.NoteIDs)},
	})
}

// RevertNoteToVersion ย้อนบันทึกกลับไปยัง version ที่เลือก
func (h *NoteHandler) RevertNoteToVersion(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid note ID: "+err.Error())
	}

	versionID, err := utils.ParseUUIDParam(c, "versionId")
	if err != nil {
		return respondBadRequest(c, "Invalid version ID: "+err.Error())
	}

	note, err := h.noteService.RevertNoteToVersion(userID, noteID, versionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note reverted successfully",
		"data":    note,
	})
}
