// Package ws is the WebSocket transport for the chat core. It admits
// connections with short-lived tokens, binds each socket to one user in
// the registry, and runs the per-connection read loop.
package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/psicoconecta/portal/internal/portal/chat"
	"github.com/psicoconecta/portal/internal/portal/service"
	"github.com/psicoconecta/portal/pkg/slogx"

	"github.com/gorilla/websocket"
)

type Handler struct {
	Tokens   *service.ChatTokenService
	Chat     *service.ChatService
	Registry chat.Registry

	upgrader websocket.Upgrader
}

func NewHandler(tokens *service.ChatTokenService, chatSvc *service.ChatService, registry chat.Registry) *Handler {
	return &Handler{
		Tokens:   tokens,
		Chat:     chatSvc,
		Registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The browser client authenticates with the token, not the
			// Origin header.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and runs it to completion. Close codes
// are only expressible after the upgrade, so even rejected connections
// upgrade first, then close immediately with the right code.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := slogx.FromContext(ctx)

	token := r.URL.Query().Get("token")

	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}
	c := newConn(raw)

	user, err := h.Tokens.Admit(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrAuthRejected) {
			c.closeWith(CloseAuthFailed, "authentication failed")
			return
		}
		l.Error("connection setup failed", "error", err)
		c.closeWith(CloseSetupFailed, "setup failed")
		return
	}

	l = l.With("user_id", user.ID)
	l.Info("chat connection opened")

	h.Registry.Register(user.ID, c)
	defer func() {
		h.Registry.Unregister(user.ID)
		_ = raw.Close()
		l.Info("chat connection closed")
	}()

	// Keepalive: the peer must answer pings within pongWait.
	_ = raw.SetReadDeadline(time.Now().Add(pongWait))
	raw.SetPongHandler(func(string) error {
		return raw.SetReadDeadline(time.Now().Add(pongWait))
	})
	stopPing := startPinger(c)
	defer stopPing()

	for {
		_, data, err := raw.ReadMessage()
		if err != nil {
			return
		}

		var ev chat.InboundEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			_ = c.Deliver(chat.ErrorEvent{Error: "invalid message format"})
			continue
		}

		if ev.Type != chat.EventChatMessage {
			_ = c.Deliver(chat.ErrorEvent{Error: "unknown message type"})
			continue
		}

		_, err = h.Chat.Send(ctx, user, ev.ReceiverID, ev.Message)
		switch {
		case err == nil:
			// Fan-out happens inside Send.

		case errors.Is(err, service.ErrMissingFields):
			_ = c.Deliver(chat.ErrorEvent{Error: "receiverId and message are required"})

		case errors.Is(err, service.ErrUnknownReceiver):
			_ = c.Deliver(chat.ErrorEvent{Error: "receiver not found"})

		case errors.Is(err, service.ErrNotAllowed):
			_ = c.Deliver(chat.ErrorEvent{Error: "messaging not allowed between these users"})
			c.closeWith(CloseNotAllowed, "not allowed")
			return

		default:
			l.Error("message routing failed", "error", err)
			_ = c.Deliver(chat.ErrorEvent{Error: "failed to send message"})
		}
	}
}

// startPinger keeps the connection alive until the returned stop func is
// called or the peer stops answering.
func startPinger(c *conn) func() {
	ticker := time.NewTicker(pingPeriod)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := c.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }
}
