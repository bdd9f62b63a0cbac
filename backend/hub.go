package main

import (
	"encoding/json"
	"sync"
)

// Hub fans broadcast payloads out to every connected websocket client.
// Writes that can't keep up are dropped rather than blocking the game loop.
type Hub struct {
	mu                sync.Mutex
	clients           map[*Client]struct{}
	broadcastStatus   chan StatusResponse
	broadcastHistory  chan historyPayload
	broadcastReset    chan resetPayload
	broadcastSettings chan settingsPayload
	broadcastStats    chan statsPayload
}

type Client struct {
	hub  *Hub
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewHub() *Hub {
	return &Hub{
		clients:           make(map[*Client]struct{}),
		broadcastStatus:   make(chan StatusResponse, 32),
		broadcastHistory:  make(chan historyPayload, 32),
		broadcastReset:    make(chan resetPayload, 8),
		broadcastSettings: make(chan settingsPayload, 8),
		broadcastStats:    make(chan statsPayload, 8),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcastStatus:
			h.broadcast("status", payload)
		case payload := <-h.broadcastHistory:
			h.broadcast("history", payload)
		case payload := <-h.broadcastReset:
			h.broadcast("reset", payload)
		case payload := <-h.broadcastSettings:
			h.broadcast("settings", payload)
		case payload := <-h.broadcastStats:
			h.broadcast("stats", payload)
		}
	}
}

func (h *Hub) broadcast(msgType string, payload any) {
	h.mu.Lock()
	for client := range h.clients {
		client.sendJSON(wsMessage{Type: msgType, Payload: mustMarshal(payload)})
	}
	h.mu.Unlock()
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
