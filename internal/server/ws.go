package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"pong/internal/game"
	"pong/internal/net"
)

const (
	BroadcastHz = 30

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local dev
	},
}

// Spectator is one read-only websocket client.
type Spectator struct {
	ID   string
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// Hub fans rendered frames out to spectators. It implements game.Renderer,
// so it can sit behind a game.Driver or be fed from the window client.
type Hub struct {
	field          game.Field
	broadcastEvery uint32
	logger         *log.Logger

	register   chan *Spectator
	unregister chan *Spectator
	snaps      chan game.Snapshot
	done       chan struct{}

	spectators map[*Spectator]struct{}
	count      atomic.Int32

	mu     sync.RWMutex
	latest game.Snapshot
}

func NewHub(field game.Field) *Hub {
	every := uint32(game.FPS / BroadcastHz)
	if every == 0 {
		every = 1
	}
	return &Hub{
		field:          field,
		broadcastEvery: every,
		logger:         log.New(os.Stdout, "[SPECTATE] ", log.LstdFlags),
		register:       make(chan *Spectator),
		unregister:     make(chan *Spectator),
		snaps:          make(chan game.Snapshot, 8),
		done:           make(chan struct{}),
		spectators:     make(map[*Spectator]struct{}),
	}
}

// Render records the frame and queues it for broadcast. It never blocks the
// frame loop; frames are dropped if the hub falls behind.
func (h *Hub) Render(snap game.Snapshot) {
	h.mu.Lock()
	h.latest = snap
	h.mu.Unlock()

	select {
	case h.snaps <- snap:
	default:
	}
}

// Latest returns the most recently rendered frame.
func (h *Hub) Latest() game.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

func (h *Hub) Spectators() int {
	return int(h.count.Load())
}

// Run owns the spectator set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	defer func() {
		for s := range h.spectators {
			close(s.send)
		}
		h.spectators = nil
		h.count.Store(0)
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case s := <-h.register:
			h.spectators[s] = struct{}{}
			h.count.Store(int32(len(h.spectators)))
			s.queue(h.encode(net.NewWelcome(s.ID, h.field)))
			h.logger.Printf("Spectator %s joined (total: %d)", s.ID, len(h.spectators))

		case s := <-h.unregister:
			if _, ok := h.spectators[s]; ok {
				delete(h.spectators, s)
				close(s.send)
				h.count.Store(int32(len(h.spectators)))
				h.logger.Printf("Spectator %s left (total: %d)", s.ID, len(h.spectators))
			}

		case snap := <-h.snaps:
			if snap.Tick%h.broadcastEvery != 0 || len(h.spectators) == 0 {
				continue
			}
			data := h.encode(net.NewSnap(snap))
			for s := range h.spectators {
				s.queue(data)
			}
		}
	}
}

func (h *Hub) encode(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Printf("Error marshaling message: %v", err)
		return nil
	}
	return data
}

func (h *Hub) join(s *Spectator) bool {
	select {
	case h.register <- s:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(s *Spectator) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

func (s *Spectator) queue(data []byte) {
	if data == nil {
		return
	}
	select {
	case s.send <- data:
	default:
		// Slow spectator, drop the frame
	}
}

// readPump only exists to process control frames and notice disconnects.
func (s *Spectator) readPump() {
	defer func() {
		s.hub.leave(s)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(512)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.hub.logger.Printf("WebSocket error: %v", err)
			}
			return
		}
	}
}

func (s *Spectator) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// HandleSpectate upgrades the request and attaches a spectator to the hub.
func HandleSpectate(h *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Printf("WebSocket upgrade error: %v", err)
			return
		}

		s := &Spectator{
			ID:   uuid.NewString(),
			conn: conn,
			send: make(chan []byte, 64),
			hub:  h,
		}
		if !h.join(s) {
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
			conn.Close()
			return
		}

		go s.writePump()
		go s.readPump()
	}
}
