package ws

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 64 * 1024
	sendBuffer     = 256
)

// Client is one live relay connection.
type Client struct {
	ID string

	send      chan []byte
	closeOnce sync.Once
}

func NewClient(id string) *Client {
	return &Client{
		ID:   id,
		send: make(chan []byte, sendBuffer),
	}
}

// Outbound exposes the connection's send queue to the write pump (and tests).
func (c *Client) Outbound() <-chan []byte { return c.send }

func (c *Client) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	default:
		// slow consumer, drop the frame
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.send) })
}

// writePump drains the send queue onto the socket and keeps the connection
// alive with pings. Runs until the queue closes or a write fails.
func (c *Client) writePump(conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()
	for {
		select {
		case payload, ok := <-c.send:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(time.Second))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return
			}
		}
	}
}
