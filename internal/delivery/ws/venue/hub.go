package ws_venue

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const EventVibeUpdated = "VIBE_UPDATED"

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan Event
	venueID string
}

type venueEvent struct {
	venueID string
	event   Event
}

// Hub fans venue vibe updates out to websocket subscribers of that venue.
// Delivery is best effort: slow clients get dropped, and nothing here ever
// blocks the ingestion path that triggers the broadcast.
type Hub struct {
	logger     *slog.Logger
	venues     map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan venueEvent
	mu         sync.RWMutex
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger:     logger,
		venues:     make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan venueEvent),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)

		case client := <-h.unregister:
			h.handleUnregister(client)

		case ve := <-h.broadcast:
			h.broadcastToVenue(ve.venueID, ve.event)
		}
	}
}

// NotifyVibeUpdated is called after a successful feedback submission.
func (h *Hub) NotifyVibeUpdated(venueID uuid.UUID) {
	h.broadcast <- venueEvent{
		venueID: venueID.String(),
		event: Event{
			Type: EventVibeUpdated,
			Payload: map[string]interface{}{
				"venue_id":  venueID.String(),
				"timestamp": time.Now().Unix(),
			},
		},
	}
}

func (h *Hub) handleRegister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.venues[client.venueID]; !exists {
		h.venues[client.venueID] = make(map[*Client]bool)
	}
	h.venues[client.venueID][client] = true

	h.logger.Info("vibe subscriber registered", "venue", client.venueID)
}

func (h *Hub) handleUnregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, exists := h.venues[client.venueID]; exists {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.send)
			if len(clients) == 0 {
				delete(h.venues, client.venueID)
			}
		}
	}

	h.logger.Info("vibe subscriber unregistered", "venue", client.venueID)
}

func (h *Hub) broadcastToVenue(venueID string, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, exists := h.venues[venueID]; exists {
		for client := range clients {
			select {
			case client.send <- event:
			default:
				close(client.send)
				delete(clients, client)
			}
		}
	}
}
