package websocket

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connectfour/internal/domain"
)

// sendBuffer is how many messages may wait for a viewer before it is
// considered stalled and dropped.
const sendBuffer = 32

var errViewerStalled = errors.New("viewer send buffer full")

type viewer struct {
	conn *websocket.Conn
	send chan any
}

// ConnectionManager tracks every open viewer of the table. Each viewer has
// its own queue drained by a write pump, so senders never wait on a socket.
type ConnectionManager struct {
	viewers map[int64]*viewer

	mu           sync.RWMutex
	nextID       atomic.Int64
	writeTimeout time.Duration
}

func NewConnectionManager(writeTimeout time.Duration) *ConnectionManager {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &ConnectionManager{
		viewers:      make(map[int64]*viewer),
		writeTimeout: writeTimeout,
	}
}

// AddConnection registers conn and returns the id used to address it.
func (cm *ConnectionManager) AddConnection(conn *websocket.Conn) int64 {
	id := cm.nextID.Add(1)
	v := &viewer{conn: conn, send: make(chan any, sendBuffer)}

	cm.mu.Lock()
	cm.viewers[id] = v
	cm.mu.Unlock()

	go cm.writePump(id, v)
	return id
}

// writePump is the only writer of data frames on v.conn.
func (cm *ConnectionManager) writePump(id int64, v *viewer) {
	for message := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(cm.writeTimeout))
		if err := v.conn.WriteJSON(message); err != nil {
			log.Printf("[WS] Write to viewer %d failed: %v", id, err)
			v.conn.Close()
			// keep draining so the channel never fills behind a dead socket
			for range v.send {
			}
			return
		}
	}
}

func (cm *ConnectionManager) RemoveConnection(id int64) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if v, exists := cm.viewers[id]; exists {
		close(v.send)
		v.conn.Close()
		delete(cm.viewers, id)
	}
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.viewers)
}

// SendMessage queues message for a single viewer. A viewer whose queue is
// full is disconnected.
func (cm *ConnectionManager) SendMessage(id int64, message any) error {
	cm.mu.RLock()
	err := cm.enqueueLocked(id, message)
	cm.mu.RUnlock()

	if errors.Is(err, errViewerStalled) {
		log.Printf("[WS] Viewer %d stalled, disconnecting", id)
		cm.RemoveConnection(id)
	}
	return err
}

// enqueueLocked must be called with cm.mu held for reading.
func (cm *ConnectionManager) enqueueLocked(id int64, message any) error {
	v, exists := cm.viewers[id]
	if !exists {
		return nil // viewer already gone
	}
	select {
	case v.send <- message:
		return nil
	default:
		return errViewerStalled
	}
}

// Ping sends a control ping. WriteControl may run alongside the write pump.
func (cm *ConnectionManager) Ping(id int64) error {
	cm.mu.RLock()
	v, exists := cm.viewers[id]
	cm.mu.RUnlock()

	if !exists {
		return websocket.ErrCloseSent
	}
	return v.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(cm.writeTimeout))
}

// BroadcastMessage queues message for every viewer and returns without
// waiting for any socket. Viewers that have fallen too far behind are
// dropped.
func (cm *ConnectionManager) BroadcastMessage(message domain.ServerMessage) {
	var stalled []int64

	cm.mu.RLock()
	for id := range cm.viewers {
		if err := cm.enqueueLocked(id, message); err != nil {
			stalled = append(stalled, id)
		}
	}
	cm.mu.RUnlock()

	for _, id := range stalled {
		log.Printf("[WS] Viewer %d stalled, disconnecting", id)
		cm.RemoveConnection(id)
	}
}
