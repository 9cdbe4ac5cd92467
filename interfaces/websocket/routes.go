// interfaces/websocket/routes.go
package websocket

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RegisterWebSocketRoutes เปิดเส้นทาง /ws สำหรับรับ notification แบบ realtime
// authMiddleware ต้องตรวจ token และใส่ userID ลง context ก่อนถึงจุด upgrade
func RegisterWebSocketRoutes(app *fiber.App, hub *Hub, authMiddleware fiber.Handler) {
	// ต้องลงทะเบียนก่อน middleware upgrade ไม่งั้นโดนบังคับ upgrade
	app.Get("/ws/stats", authMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    hub.GetStats(),
		})
	})

	app.Use("/ws", authMiddleware, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("userID").(uuid.UUID)
		if !ok {
			conn.Close()
			return
		}
		hub.HandleConnection(conn, userID)
	}))
}
