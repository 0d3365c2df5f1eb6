package hub

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans completed scans out to live dashboard connections. Delivery
// is not guaranteed: a slow or gone subscriber is dropped, and a full
// broadcast queue discards the update rather than block a scan request.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Publish queues v for broadcast and returns immediately.
func (h *Hub) Publish(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("failed to marshal broadcast payload", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		zap.L().Warn("broadcast queue full, dropping update")
	}
}

// Register attaches a websocket connection as a subscriber and starts
// its pumps.
func (h *Hub) Register(conn *websocket.Conn) {
	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}
