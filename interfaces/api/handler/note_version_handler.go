// interfaces/api/handler/note_version_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/middleware"
	"github.com/thizplus/gofiber-notes-api/pkg/utils"
)

type NoteVersionHandler struct {
	versionService service.NoteVersionService
}

func NewNoteVersionHandler(versionService service.NoteVersionService) *NoteVersionHandler {
	return &NoteVersionHandler{
		versionService: versionService,
	}
}

// GetVersions ดึงประวัติ version ทั้งหมดของบันทึก เรียงใหม่สุดก่อน
func (h *NoteVersionHandler) GetVersions(c *fiber.Ctx) error {
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

	versions, err := h.versionService.GetVersions(userID, noteID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    versions,
	})
}

// GetVersionByID ดึง version เดียวของบันทึก
func (h *NoteVersionHandler) GetVersionByID(c *fiber.Ctx) error {
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

	version, err := h.versionService.GetVersionByID(userID, noteID, versionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    version,
	})
}

// GetAuditLog สร้าง audit log ของบันทึกจาก version chain
func (h *NoteVersionHandler) GetAuditLog(c *fiber.Ctx) error {
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

	entries, err := h.versionService.GetAuditLog(userID, noteID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    entries,
	})
}
