// interfaces/api/routes/tag_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/handler"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/middleware"
)

// SetupTagRoutes กำหนดเส้นทาง API สำหรับ tag
func SetupTagRoutes(router fiber.Router, tagHandler *handler.TagHandler) {
	tags := router.Group("/tags")
	tags.Use(middleware.Protected())

	tags.Post("/", tagHandler.CreateTag)
	tags.Get("/", tagHandler.GetTags)
	tags.Get("/:id", tagHandler.GetTag)
}
