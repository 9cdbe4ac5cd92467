// domain/port/notification_port.go
package port

import "github.com/thizplus/gofiber-notes-api/domain/dto"

// NotificationPort - ช่องทางส่ง notification ออกจาก core
// implementation จริง publish ลง Redis แล้ว WebSocket hub เป็นฝ่าย fan-out
type NotificationPort interface {
	// Publish ส่ง notification หนึ่งรายการ - ผู้เรียกเป็นคนตัดสินใจว่าจะกลืน error
	Publish(notification *dto.Notification) error
}
