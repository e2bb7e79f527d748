package notifier

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/models"
)

// EventType labels what changed for dashboard listeners.
type EventType string

const (
	EventOrderCreated  EventType = "order_created"
	EventOrderUpdated  EventType = "order_updated"
	EventPaymentClaims EventType = "payment_claimed"
)

// OrderEvent is the payload pushed to connected admin dashboards.
type OrderEvent struct {
	Type  EventType    `json:"type"`
	Order models.Order `json:"order"`
}

// Hub fans order events out to connected admin websockets.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Serve upgrades the request and keeps the connection registered until the
// peer goes away. Inbound frames are drained and ignored.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			return
		}
	}
}

// Broadcast sends the event to every connected client. A client whose write
// fails is dropped.
func (h *Hub) Broadcast(event OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("order event marshal failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// ClientCount is exposed for tests and the health endpoint.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
