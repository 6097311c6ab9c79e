package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"natbtree/btree"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	// Allow all origins
	CheckOrigin: func(r *http.Request) bool { return true },
}

// hub keeps every subscriber. Writes happen under mu, one writer per conn at a time.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     zerolog.Logger
}

func newHub(log zerolog.Logger) *hub {
	return &hub{
		clients: make(map[*websocket.Conn]struct{}),
		log:     log,
	}
}

func (h *hub) add(conn *websocket.Conn, initial *btree.Snapshot[string]) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := write(conn, initial); err != nil {
		return err
	}
	h.clients[conn] = struct{}{}
	h.log.Debug().Int("clients", len(h.clients)).Msg("subscriber added")
	return nil
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

func (h *hub) broadcast(s *btree.Snapshot[string]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := write(conn, s); err != nil {
			h.log.Warn().Err(err).Msg("dropping subscriber")
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		conn.Close()
		delete(h.clients, conn)
	}
}

func write(conn *websocket.Conn, s *btree.Snapshot[string]) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	// Take the server lock so no insertion slips between this snapshot and registration.
	s.mu.Lock()
	err = s.hub.add(conn, s.tree.Snapshot())
	s.mu.Unlock()
	if err != nil {
		conn.Close()
		return
	}
	defer s.hub.remove(conn)

	// Subscribers only listen; reading detects when they go away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
