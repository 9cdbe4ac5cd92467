// infrastructure/adapter/redis_notification.go
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/port"
)

// NotificationChannel - ชื่อ channel ที่ hub subscribe อยู่
const NotificationChannel = "user_notifications"

// RedisNotificationAdapter publish notification ลง Redis channel
// WebSocket hub เป็นฝ่าย subscribe แล้ว fan-out ไปยัง client ของผู้ใช้
type RedisNotificationAdapter struct {
	client *redis.Client
}

// NewRedisNotificationAdapter สร้าง NotificationPort ที่ใช้ Redis pub/sub
func NewRedisNotificationAdapter(client *redis.Client) port.NotificationPort {
	return &RedisNotificationAdapter{client: client}
}

// Publish ส่ง notification หนึ่งรายการลง channel
func (a *RedisNotificationAdapter) Publish(notification *dto.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.client.Publish(ctx, NotificationChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
