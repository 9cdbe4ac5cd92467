// interfaces/api/handler/user_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/middleware"
	"github.com/thizplus/gofiber-notes-api/pkg/validator"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile ดึงโปรไฟล์ของผู้ใช้ปัจจุบัน
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

// UpdateProfile แก้ไขโปรไฟล์ของผู้ใช้ปัจจุบัน
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid request body: "+err.Error())
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	user, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"data":    user,
	})
}

// UploadAvatar อัปโหลดรูปโปรไฟล์
func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return respondBadRequest(c, "Missing avatar file: "+err.Error())
	}

	user, err := h.userService.UploadAvatar(userID, file)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Avatar uploaded successfully",
		"data":    user,
	})
}
