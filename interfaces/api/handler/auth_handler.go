// interfaces/api/handler/auth_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/middleware"
	"github.com/thizplus/gofiber-notes-api/pkg/validator"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register สมัครสมาชิกใหม่
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid request body: "+err.Error())
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	result, err := h.authService.Register(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registered successfully",
		"data":    result,
	})
}

// Login เข้าสู่ระบบ
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid request body: "+err.Error())
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged in successfully",
		"data":    result,
	})
}

// Refresh ขอ token คู่ใหม่ด้วย refresh token
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "Invalid request body: "+err.Error())
	}
	if err := validator.ValidateStruct(&req); err != nil {
		return respondBadRequest(c, err.Error())
	}

	tokens, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    tokens,
	})
}

// Logout เพิกถอน token ปัจจุบันของผู้ใช้
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized: " + err.Error(),
		})
	}

	if err := h.authService.Logout(userID, middleware.GetAccessToken(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}
