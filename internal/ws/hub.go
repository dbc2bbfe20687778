package ws

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/sarmadnaeem111/new-delight-sprite-sub000/internal/logger"
)

// Hub управляет всеми WebSocket клиентами продавцов. Через него в открытые
// сокеты уходят счётчики непрочитанных уведомлений.
type Hub struct {
	mu         sync.RWMutex
	clients    map[uuid.UUID]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
}

type message struct {
	sellerID uuid.UUID
	payload  []byte
}

// NewHub создаёт новый хаб.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 32),
	}
}

// Run запускает главный цикл хаба.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case msg := <-h.broadcast:
			h.send(msg.sellerID, msg.payload)
		}
	}
}

// Register добавляет клиента.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister удаляет клиента.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// PushUnread отправляет продавцу актуальный счётчик непрочитанного.
func (h *Hub) PushUnread(sellerID uuid.UUID, count int) {
	h.BroadcastToSeller(sellerID, "unread_count", map[string]int{"count": count})
}

// BroadcastToSeller отправляет событие во все открытые сокеты продавца.
// Сообщение следует контракту WebSocket API: "type" — имя события,
// "data" — полезная нагрузка.
func (h *Hub) BroadcastToSeller(sellerID uuid.UUID, event string, data any) {
	payload := map[string]any{
		"type": event,
		"data": data,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		if logger.Log != nil {
			logger.Log.WithField("error", err.Error()).Error("ws: не удалось сериализовать сообщение")
		}
		return
	}

	h.broadcast <- message{sellerID: sellerID, payload: raw}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.sellerID]; !ok {
		h.clients[client.sellerID] = make(map[*Client]struct{})
	}
	h.clients[client.sellerID][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.sellerID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clients, client.sellerID)
		}
	}
}

func (h *Hub) send(sellerID uuid.UUID, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[sellerID] {
		select {
		case client.send <- payload:
		default:
			// Переполненный буфер означает мёртвое соединение
			go client.Close()
		}
	}
}
