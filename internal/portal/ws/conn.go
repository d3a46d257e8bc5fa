package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Application close codes, in the private range reserved by RFC 6455.
const (
	// CloseSetupFailed signals a server-side failure while setting up the
	// connection.
	CloseSetupFailed = 4000

	// CloseAuthFailed signals a missing, malformed, expired, or otherwise
	// unverifiable connection token.
	CloseAuthFailed = 4001

	// CloseNotAllowed signals a message blocked by the role policy.
	CloseNotAllowed = 4003
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// conn wraps a websocket connection with a write mutex. gorilla/websocket
// allows at most one concurrent writer, and Deliver may be called from any
// goroutine routing a message.
type conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func newConn(ws *websocket.Conn) *conn {
	return &conn{ws: ws}
}

// Deliver writes one JSON event to the peer.
func (c *conn) Deliver(event any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteJSON(event)
}

// ping sends a control ping to keep the connection alive.
func (c *conn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// closeWith sends a close frame with the given code and reason, then tears
// the connection down.
func (c *conn) closeWith(code int, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := websocket.FormatCloseMessage(code, reason)
	_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	_ = c.ws.Close()
}
