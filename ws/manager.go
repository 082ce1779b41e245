package ws

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

// Manager keeps track of house-owner websocket connections subscribed to
// the booking feed.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn // ownerID -> conn
}

func NewManager() *Manager {
	return &Manager{connections: make(map[string]*websocket.Conn)}
}

// Register registers an owner connection, replacing any existing one.
func (m *Manager) Register(ownerID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.connections[ownerID]; ok && old != conn {
		// close old connection to avoid leaks
		_ = old.Close()
	}
	m.connections[ownerID] = conn
}

// Unregister removes an owner connection.
func (m *Manager) Unregister(ownerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.connections[ownerID]; ok {
		_ = conn.Close()
		delete(m.connections, ownerID)
	}
}

// Send delivers a text message to an owner if connected. The write happens
// under the lock; gorilla/websocket allows at most one concurrent writer
// per connection.
func (m *Manager) Send(ownerID string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	conn, ok := m.connections[ownerID]
	if !ok || conn == nil {
		return errors.New("owner not connected")
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// IsConnected returns whether an owner is currently subscribed.
func (m *Manager) IsConnected(ownerID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.connections[ownerID]
	return ok
}

// List returns a copy of currently subscribed owner IDs.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}
