package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"talentmate/internal/domain/notification"

	"github.com/google/uuid"
)

type envelope struct {
	UserID  uuid.UUID
	Payload []byte
}

// Hub tracks connected clients per user and delivers notification
// events to the matching connections only.
type Hub struct {
	clients    map[*Client]bool
	deliver    chan envelope
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		deliver:    make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.remove(client)

		case env := <-h.deliver:
			h.mutex.RLock()
			targets := make([]*Client, 0)
			for c := range h.clients {
				if c.userID == env.UserID {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- env.Payload:
				default:
					h.remove(client)
				}
			}
		}
	}
}

// remove detaches a client and closes its send channel. Called from
// the Run goroutine directly so a slow client can never deadlock the
// delivery loop through the unregister channel.
func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()

	if ok {
		h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// NotificationEvent is the wire format pushed to clients.
type NotificationEvent struct {
	Type         string                    `json:"type"`
	Notification notification.Notification `json:"notification"`
	Timestamp    string                    `json:"timestamp"`
}

// Push implements the notification pusher used by the usecases.
// Delivery is best effort: a full buffer drops the event.
func (h *Hub) Push(userID uuid.UUID, n notification.Notification) {
	if h == nil {
		return
	}

	evt := NotificationEvent{
		Type:         "notification",
		Notification: n,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	select {
	case h.deliver <- envelope{UserID: userID, Payload: b}:
	default:
		h.logger.Printf("WS push dropped | user=%s reason=buffer_full", userID)
	}
}
