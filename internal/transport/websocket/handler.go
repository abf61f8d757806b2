package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/game"
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager  *ConnectionManager
	Table        *game.Table
	Upgrader     websocket.Upgrader
	ReadTimeout  time.Duration
	PingInterval time.Duration
}

func NewHandler(cm *ConnectionManager, table *game.Table, allowedOrigins []string, readTimeout, pingInterval time.Duration) *Handler {
	return &Handler{
		ConnManager: cm,
		Table:       table,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		ReadTimeout:  readTimeout,
		PingInterval: pingInterval,
	}
}

// originChecker allows same-origin requests (no Origin header) and any
// origin listed in allowed.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == origin {
				return true
			}
		}
		log.Printf("[WS] Origin '%s' rejected", origin)
		return false
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	// registering under the table lock puts the snapshot ahead of any broadcast
	var id int64
	h.Table.Join(func(state domain.ServerMessage) {
		id = h.ConnManager.AddConnection(conn)
		h.ConnManager.SendMessage(id, state)
	})
	log.Printf("[WS] Viewer %d connected (%d open)", id, h.ConnManager.Count())

	done := make(chan struct{})
	defer func() {
		close(done)
		h.ConnManager.RemoveConnection(id)
		log.Printf("[WS] Viewer %d disconnected", id)
	}()

	conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))
		return nil
	})

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(h.PingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := h.ConnManager.Ping(id); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Viewer %d disconnected unexpectedly: %v", id, err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			h.ConnManager.SendMessage(id, domain.ErrorMessage{Type: domain.MsgError, Message: "invalid message"})
			continue
		}

		h.processMessage(id, msg)
	}
}

// processMessage routes specific actions. State changes reach every viewer
// through the table's broadcaster; failures only go back to the sender.
func (h *Handler) processMessage(id int64, msg domain.ClientMessage) {
	var err error
	switch msg.Type {
	case domain.MsgDrop:
		_, err = h.Table.Drop(msg.Column)
	case domain.MsgClick:
		_, err = h.Table.Click(domain.Position{Row: msg.Row, Col: msg.Column})
	case domain.MsgReset:
		h.Table.Reset()
	case domain.MsgState:
		h.ConnManager.SendMessage(id, h.Table.Snapshot())
	default:
		err = errors.New("unknown message type: " + msg.Type)
	}

	if err != nil {
		log.Printf("[WS] Viewer %d: %v", id, err)
		h.ConnManager.SendMessage(id, domain.ErrorMessage{Type: domain.MsgError, Message: err.Error()})
	}
}
