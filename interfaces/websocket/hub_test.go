// interfaces/websocket/hub_test.go
package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func addHubClient(h *Hub, lastPing time.Time) *Client {
	client := &Client{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Send:         make(chan []byte, 1),
		Hub:          h,
		LastPingTime: lastPing,
	}
	h.clients[client.ID] = client
	h.userConnections[client.UserID] = append(h.userConnections[client.UserID], client.ID)
	return client
}

func TestCheckAliveClientsDropsStaleConnections(t *testing.T) {
	h := NewHub(nil)
	stale := addHubClient(h, time.Now().Add(-2*time.Minute))
	fresh := addHubClient(h, time.Now())

	// ต้องจบได้ในตัวเอง โดยไม่มี goroutine อื่นมา drain channel ของ hub
	h.checkAliveClients()

	assert.NotContains(t, h.clients, stale.ID)
	assert.NotContains(t, h.userConnections, stale.UserID)
	assert.Contains(t, h.clients, fresh.ID)

	// channel ของ client ที่ถูกถอดต้องถูกปิดให้ writePump จบ
	_, open := <-stale.Send
	assert.False(t, open)
}

func TestUnregisterClientKeepsOtherDevices(t *testing.T) {
	h := NewHub(nil)
	userID := uuid.New()

	// ผู้ใช้คนเดียวต่อสอง device
	first := &Client{ID: uuid.New(), UserID: userID, Send: make(chan []byte, 1), Hub: h}
	second := &Client{ID: uuid.New(), UserID: userID, Send: make(chan []byte, 1), Hub: h}
	h.clients[first.ID] = first
	h.clients[second.ID] = second
	h.userConnections[userID] = []uuid.UUID{first.ID, second.ID}

	h.unregisterClient(first)

	assert.NotContains(t, h.clients, first.ID)
	assert.Contains(t, h.clients, second.ID)
	assert.Equal(t, []uuid.UUID{second.ID}, h.userConnections[userID])
}
