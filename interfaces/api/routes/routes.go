// interfaces/api/routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/handler"
	"github.com/thizplus/gofiber-notes-api/pkg/utils"
)

// SetupRoutes กำหนดเส้นทาง API ทั้งหมดของแอปพลิเคชัน
func SetupRoutes(
	app *fiber.App,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	tagHandler *handler.TagHandler,
	noteHandler *handler.NoteHandler,
	noteVersionHandler *handler.NoteVersionHandler,
) {
	// สร้าง API group
	api := app.Group("/api/v1")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "API is running",
			"time":    utils.Now(),
		})
	})

	// กำหนดเส้นทางต่างๆ
	SetupAuthRoutes(api, authHandler)
	SetupUserRoutes(api, userHandler)
	SetupTagRoutes(api, tagHandler)
	SetupNoteRoutes(api, noteHandler, noteVersionHandler)
}
