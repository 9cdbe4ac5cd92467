// interfaces/websocket/client.go
package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second

	// ขนาด buffer ของข้อความขาออกต่อ connection
	sendBufferSize = 64
)

// Client - หนึ่ง WebSocket connection ของผู้ใช้
type Client struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Conn         *websocket.Conn
	Send         chan []byte
	Hub          *Hub
	IsAlive      bool
	LastPingTime time.Time
}

// clientMessage - ข้อความขาเข้าจาก client (รองรับเฉพาะ ping)
type clientMessage struct {
	Type string `json:"type"`
}

// HandleConnection ผูก connection เข้ากับ hub แล้วรัน read/write pump
// userID ต้องผ่านการตรวจ token จาก middleware มาแล้ว
func (h *Hub) HandleConnection(conn *websocket.Conn, userID uuid.UUID) {
	client := &Client{
		ID:           uuid.New(),
		UserID:       userID,
		Conn:         conn,
		Send:         make(chan []byte, sendBufferSize),
		Hub:          h,
		IsAlive:      true,
		LastPingTime: time.Now(),
	}

	h.register <- client

	go client.writePump()
	client.readPump()
}

// readPump อ่านข้อความจาก client - connection นี้ใช้รับ notification เป็นหลัก
// ข้อความขาเข้ารองรับเฉพาะ ping เพื่อรักษา connection
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, payload, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket: unexpected close from user %s: %v", c.UserID, err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			continue
		}

		if msg.Type == "ping" {
			c.LastPingTime = time.Now()
			pong, _ := json.Marshal(map[string]interface{}{
				"type":      "pong",
				"timestamp": time.Now(),
			})
			select {
			case c.Send <- pong:
			default:
			}
		}
	}
}

// writePump ส่งข้อความจาก Send channel ออกไปยัง client
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
