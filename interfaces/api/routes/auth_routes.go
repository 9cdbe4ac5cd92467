// interfaces/api/routes/auth_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/handler"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/middleware"
)

// SetupAuthRoutes กำหนดเส้นทาง API สำหรับการยืนยันตัวตน
func SetupAuthRoutes(router fiber.Router, authHandler *handler.AuthHandler) {
	auth := router.Group("/auth")

	// Public routes
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes
	auth.Post("/logout", middleware.Protected(), authHandler.Logout)
}
