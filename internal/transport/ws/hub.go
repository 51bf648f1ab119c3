package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message.
type MessageType string

// Server → client message types
const (
	MsgCoachMessage     MessageType = "coach_message"
	MsgHintLevelChanged MessageType = "hint_level_changed"
	MsgSessionEnded     MessageType = "session_ended"
	MsgError            MessageType = "error"
)

// Client → server message types
const (
	MsgChildMessage MessageType = "child_message"
)

// Message is the WebSocket envelope format.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for coaching sessions. One
// connection per session; a new connection for the same session replaces
// the old one.
type Hub struct {
	conns map[string]*Connection // sessionID -> conn
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	notify     chan *SessionMessage
}

// Connection represents one session's WebSocket connection.
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

// SessionMessage is a message addressed to one session.
type SessionMessage struct {
	SessionID string
	Message   *Message
}

// NewHub creates a new WebSocket hub and starts its event loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		notify:     make(chan *SessionMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if old, ok := h.conns[conn.SessionID]; ok {
				close(old.Send)
			}
			h.conns[conn.SessionID] = conn
			h.mu.Unlock()
			log.Printf("Session %s connected via WebSocket", conn.SessionID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.conns[conn.SessionID]; ok && existing == conn {
				delete(h.conns, conn.SessionID)
				close(conn.Send)
				log.Printf("Session %s disconnected", conn.SessionID)
			}
			h.mu.Unlock()

		case msg := <-h.notify:
			h.mu.RLock()
			if conn, ok := h.conns[msg.SessionID]; ok {
				data, _ := json.Marshal(msg.Message)
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// NotifySession sends an event to a session's connection (implements
// service.Notifier).
func (h *Hub) NotifySession(sessionID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.notify <- &SessionMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
