// interfaces/api/handler/tag_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/middleware"
	"github.com/thizplus/gofiber-notes-api/pkg/utils"
	"github.com/thizplus/gofiber-notes-api/pkg/validator"
)

type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// CreateTag สร้าง tag ใหม่ - ชื่อซ้ำคืนตัวเดิม
func (h *TagHandler) CreateTag(c *fiber.Ctx) error {
	if _, err := middleware.GetUserUUID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req struct {
		Name string `json:"name" validate:"required,max=100"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid request body: "+err.Error())
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	tag, err := h.tagService.CreateTag(req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Tag created successfully",
		"data":    tag,
	})
}

// GetTags ดึง tag ทั้งหมดในระบบ
func (h *TagHandler) GetTags(c *fiber.Ctx) error {
	if _, err := middleware.GetUserUUID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	tags, err := h.tagService.GetTags()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    tags,
	})
}

// GetTag ดึง tag ตาม id
func (h *TagHandler) GetTag(c *fiber.Ctx) error {
	if _, err := middleware.GetUserUUID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	tagID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return respondBadRequest(c, "Invalid tag ID: "+err.Error())
	}

	tag, err := h.tagService.GetTag(tagID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    tag,
	})
}
