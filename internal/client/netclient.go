package client

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"

	"pong/internal/net"
)

// NetClient follows a spectator feed. It never writes game messages.
type NetClient struct {
	conn     *websocket.Conn
	snapshot chan net.SnapMessage
	welcome  chan net.WelcomeMessage
	done     chan struct{}
}

func NewNetClient(addr string) (*NetClient, error) {
	conn, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return nil, err
	}

	nc := &NetClient{
		conn:     conn,
		snapshot: make(chan net.SnapMessage, 10),
		welcome:  make(chan net.WelcomeMessage, 1),
		done:     make(chan struct{}),
	}

	go nc.readPump()

	return nc, nil
}

func (nc *NetClient) readPump() {
	defer func() {
		nc.conn.Close()
		close(nc.done)
	}()

	for {
		_, message, err := nc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Read error: %v", err)
			}
			return
		}

		var base struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(message, &base); err != nil {
			continue
		}

		switch base.Type {
		case "welcome":
			var welcome net.WelcomeMessage
			if err := json.Unmarshal(message, &welcome); err == nil {
				select {
				case nc.welcome <- welcome:
				default:
				}
			}

		case "snap":
			var snap net.SnapMessage
			if err := json.Unmarshal(message, &snap); err == nil {
				select {
				case nc.snapshot <- snap:
				default:
					// Drop if buffer full
				}
			}
		}
	}
}

// GetSnapshot returns the next buffered frame, or nil if none is waiting.
func (nc *NetClient) GetSnapshot() *net.SnapMessage {
	select {
	case snap := <-nc.snapshot:
		return &snap
	default:
		return nil
	}
}

func (nc *NetClient) GetWelcome() *net.WelcomeMessage {
	select {
	case welcome := <-nc.welcome:
		return &welcome
	default:
		return nil
	}
}

// Done is closed once the feed ends.
func (nc *NetClient) Done() <-chan struct{} {
	return nc.done
}

func (nc *NetClient) Close() error {
	nc.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return nc.conn.Close()
}
