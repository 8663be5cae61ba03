package ws

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// Conn is the slice of *websocket.Conn the manager needs, kept narrow
// so tests can stand in fakes.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// ConnManager is the broadcast registry. The mutex guards the
// connection list and is held for the whole of Broadcast, so
// broadcasts are serialized and no connection ever sees two
// concurrent writes. gorilla/websocket allows at most one writer per
// connection at a time.
type ConnManager struct {
	mu    sync.Mutex
	conns []Conn
}

func NewConnManager() *ConnManager {
	return &ConnManager{}
}

func (m *ConnManager) Connect(conn Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns = append(m.conns, conn)
}

// Disconnect is a no-op when the connection is not registered.
func (m *ConnManager) Disconnect(conn Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remove(conn)
}

// remove must be called with m.mu held.
func (m *ConnManager) remove(conn Conn) {
	for idx, active := range m.conns {
		if active == conn {
			m.conns = append(m.conns[:idx], m.conns[idx+1:]...)
			return
		}
	}
}

func (m *ConnManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.conns)
}

// Broadcast sends message to every active connection in insertion
// order. The lock stays held for the duration of the loop: every
// reader goroutine funnels through here, and a connection must never
// be written by two goroutines at once. A failed send drops that
// connection and the broadcast moves on; one dead peer never starves
// the rest.
func (m *ConnManager) Broadcast(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var failed []Conn
	for _, conn := range m.conns {
		err := conn.WriteMessage(websocket.TextMessage, []byte(message))
		if err != nil {
			slog.Error("broadcast send failed, dropping connection", "err", err)
			conn.Close()
			failed = append(failed, conn)
		}
	}

	for _, conn := range failed {
		m.remove(conn)
	}
}
