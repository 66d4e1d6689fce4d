package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Manager fans catalog change events out to connected subscribers.
type Manager struct {
	mu   sync.RWMutex
	subs map[*websocket.Conn]struct{}
}

func NewManager() *Manager {
	return &Manager{subs: make(map[*websocket.Conn]struct{})}
}

// Subscribe registers a connection for broadcasts.
func (m *Manager) Subscribe(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs[conn] = struct{}{}
}

// Unsubscribe removes and closes a connection.
func (m *Manager) Unsubscribe(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subs[conn]; ok {
		_ = conn.Close()
		delete(m.subs, conn)
	}
}

// Broadcast sends a text message to every subscriber. Connections that fail
// to write are dropped.
func (m *Manager) Broadcast(payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for conn := range m.subs {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(m.subs, conn)
		}
	}
}

// Count returns the number of active subscribers.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}
