// interfaces/api/handler/common.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/thizplus/gofiber-notes-api/domain/types"
)

// respondError แปลง error จาก service เป็น HTTP status ที่เหมาะสม
// ตรวจด้วย errors.Is เพราะ error จาก core ถูก wrap เป็นชั้นๆ
func respondError(c *fiber.Ctx, err error) error {
	statusCode := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, types.ErrNotFound):
		statusCode = fiber.StatusNotFound
	case errors.Is(err, types.ErrAccessDenied):
		statusCode = fiber.StatusForbidden
	case errors.Is(err, types.ErrInvalidState):
		statusCode = fiber.StatusBadRequest
	case errors.Is(err, types.ErrInvalidCredentials),
		errors.Is(err, types.ErrInvalidToken):
		statusCode = fiber.StatusUnauthorized
	case errors.Is(err, types.ErrUsernameTaken),
		errors.Is(err, types.ErrEmailTaken):
		statusCode = fiber.StatusConflict
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

// respondBadRequest สำหรับ request ที่ parse หรือ validate ไม่ผ่าน
func respondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
