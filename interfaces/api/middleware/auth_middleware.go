// interfaces/api/middleware/auth_middleware.go
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/thizplus/gofiber-notes-api/domain/service"
)

var authService service.AuthService

// SetAuthService ผูก AuthService ให้ middleware - เรียกครั้งเดียวตอน bootstrap
func SetAuthService(s service.AuthService) {
	authService = s
}

// Protected ตรวจ Bearer token แล้วเก็บ user id กับ token ไว้ใน context
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ExtractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Missing or malformed token",
			})
		}

		userID, err := authService.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		}

		c.Locals("userID", userID)
		c.Locals("accessToken", token)
		return c.Next()
	}
}

// ExtractToken ดึง Bearer token จาก Authorization header
// รองรับ query parameter "token" สำหรับ WebSocket handshake
func ExtractToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Query("token")
}

// GetUserUUID ดึง user id ของ request ปัจจุบันจาก context
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user not authenticated")
	}
	return userID, nil
}

// GetAccessToken ดึง access token ของ request ปัจจุบันจาก context
func GetAccessToken(c *fiber.Ctx) string {
	token, _ := c.Locals("accessToken").(string)
	return token
}
