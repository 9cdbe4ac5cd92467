// interfaces/websocket/hub.go
package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/thizplus/gofiber-notes-api/domain/dto"
)

const (
	// channel ที่ core publish notification ลงมา
	notificationChannel = "user_notifications"

	// รูปแบบ key ของ notification ค้างส่งต่อผู้ใช้
	offlineKeyPrefix = "offline_notifications:"

	// อายุของ notification ค้างส่ง - เกินนี้ถือว่าหมดความหมาย
	offlineTTL = 24 * time.Hour
)

// Hub จัดการ WebSocket connection ทั้งหมดและ fan-out notification
// notification เข้าทาง Redis pub/sub - ผู้ใช้ offline จะถูกเก็บค้างไว้ใน Redis list
type Hub struct {
	// clientID -> client
	clients    map[uuid.UUID]*Client
	clientsMux sync.RWMutex

	// userID -> clientIDs (ผู้ใช้คนเดียวต่อได้หลาย device)
	userConnections    map[uuid.UUID][]uuid.UUID
	userConnectionsMux sync.RWMutex

	redis *redis.Client

	register   chan *Client
	unregister chan *Client

	startTime time.Time
}

// NewHub สร้าง WebSocket hub ตัวใหม่
func NewHub(redisClient *redis.Client) *Hub {
	return &Hub{
		clients:         make(map[uuid.UUID]*Client),
		userConnections: make(map[uuid.UUID][]uuid.UUID),
		redis:           redisClient,
		register:        make(chan *Client),
		unregister:      make(chan *Client),
		startTime:       time.Now(),
	}
}

// Run เริ่มการทำงานของ hub - block จนกว่า context ถูกยกเลิก
func (h *Hub) Run(ctx context.Context) {
	log.Println("WebSocket Hub started")

	go h.subscribeNotifications(ctx)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("WebSocket Hub: shutting down")
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-ticker.C:
			h.checkAliveClients()
		}
	}
}

// subscribeNotifications รับ notification จาก Redis channel แล้วส่งต่อให้ client
func (h *Hub) subscribeNotifications(ctx context.Context) {
	pubsub := h.redis.Subscribe(ctx, notificationChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}

			var notification dto.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &notification); err != nil {
				log.Printf("WebSocket Hub: invalid notification payload: %v", err)
				continue
			}
			h.deliver(&notification, []byte(msg.Payload))
		}
	}
}

// deliver ส่ง notification ให้ทุก connection ของผู้ใช้
// ถ้าผู้ใช้ไม่ online เก็บค้างไว้ใน Redis ให้ส่งตอน connect ครั้งถัดไป
func (h *Hub) deliver(notification *dto.Notification, payload []byte) {
	h.userConnectionsMux.RLock()
	clientIDs := append([]uuid.UUID{}, h.userConnections[notification.UserID]...)
	h.userConnectionsMux.RUnlock()

	if len(clientIDs) == 0 {
		h.storeOffline(notification.UserID, payload)
		return
	}

	for _, clientID := range clientIDs {
		h.clientsMux.RLock()
		client, ok := h.clients[clientID]
		h.clientsMux.RUnlock()
		if !ok {
			continue
		}

		select {
		case client.Send <- payload:
		default:
			// send buffer เต็ม - ตัด connection ทิ้งให้ client ต่อใหม่
			h.unregister <- client
		}
	}
}

// storeOffline เก็บ notification ค้างส่งใน Redis list ของผู้ใช้
func (h *Hub) storeOffline(userID uuid.UUID, payload []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := offlineKeyPrefix + userID.String()
	if err := h.redis.RPush(ctx, key, payload).Err(); err != nil {
		log.Printf("WebSocket Hub: failed to store offline notification for %s: %v", userID, err)
		return
	}
	h.redis.Expire(ctx, key, offlineTTL)
}

// flushOffline ส่ง notification ค้างทั้งหมดให้ client แล้วลบทิ้ง
func (h *Hub) flushOffline(client *Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := offlineKeyPrefix + client.UserID.String()
	payloads, err := h.redis.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		log.Printf("WebSocket Hub: failed to load offline notifications for %s: %v", client.UserID, err)
		return
	}
	if len(payloads) == 0 {
		return
	}

	for _, payload := range payloads {
		select {
		case client.Send <- []byte(payload):
		default:
			return
		}
	}
	h.redis.Del(ctx, key)

	log.Printf("WebSocket Hub: delivered %d offline notifications to user %s", len(payloads), client.UserID)
}

// registerClient ลงทะเบียน connection ใหม่
func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	h.clients[client.ID] = client
	h.clientsMux.Unlock()

	h.userConnectionsMux.Lock()
	h.userConnections[client.UserID] = append(h.userConnections[client.UserID], client.ID)
	h.userConnectionsMux.Unlock()

	log.Printf("WebSocket Hub: client %s connected (user %s)", client.ID, client.UserID)

	go h.flushOffline(client)
}

// unregisterClient ถอด connection ออกจาก hub
func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.Send)
	}
	h.clientsMux.Unlock()

	h.userConnectionsMux.Lock()
	connections := h.userConnections[client.UserID]
	for i, id := range connections {
		if id == client.ID {
			connections = append(connections[:i], connections[i+1:]...)
			break
		}
	}
	if len(connections) == 0 {
		delete(h.userConnections, client.UserID)
	} else {
		h.userConnections[client.UserID] = connections
	}
	h.userConnectionsMux.Unlock()

	log.Printf("WebSocket Hub: client %s disconnected (user %s)", client.ID, client.UserID)
}

// checkAliveClients ตัด connection ที่ไม่ตอบ ping เกิน 90 วินาที
func (h *Hub) checkAliveClients() {
	h.clientsMux.RLock()
	clientsCopy := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		clientsCopy = append(clientsCopy, client)
	}
	h.clientsMux.RUnlock()

	for _, client := range clientsCopy {
		if time.Since(client.LastPingTime) > 90*time.Second {
			// ถอดตรงๆ - ส่งเข้า h.unregister ไม่ได้เพราะ loop ที่ drain คือตัวที่เรียกเราอยู่
			h.unregisterClient(client)
		}
	}
}

// GetStats คืนสถิติของ hub สำหรับ endpoint ตรวจสุขภาพ
func (h *Hub) GetStats() map[string]interface{} {
	h.clientsMux.RLock()
	totalClients := len(h.clients)
	h.clientsMux.RUnlock()

	h.userConnectionsMux.RLock()
	totalUsers := len(h.userConnections)
	h.userConnectionsMux.RUnlock()

	return map[string]interface{}{
		"total_connections": totalClients,
		"unique_users":      totalUsers,
		"uptime":            time.Since(h.startTime).String(),
		"started_at":        h.startTime,
	}
}
