// interfaces/api/routes/user_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/handler"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/middleware"
)

// SetupUserRoutes กำหนดเส้นทาง API สำหรับโปรไฟล์ผู้ใช้
func SetupUserRoutes(router fiber.Router, userHandler *handler.UserHandler) {
	users := router.Group("/users")
	users.Use(middleware.Protected())

	users.Get("/me", userHandler.GetProfile)
	users.Put("/me", userHandler.UpdateProfile)
	users.Post("/me/avatar", userHandler.UploadAvatar)
}
