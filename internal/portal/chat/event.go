package chat

import "github.com/psicoconecta/portal/internal/portal/domain"

// EventChatMessage is the only inbound event type the relay understands.
const EventChatMessage = "chat_message"

// InboundEvent is what a client sends over the socket. Note there is no
// sender field: the sender is always the admitted identity of the
// connection, so a spoofed sender id in the payload simply has nowhere
// to land.
type InboundEvent struct {
	Type       string `json:"type"`
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
}

// OutboundEvent wraps a persisted message for delivery to the sender's and
// receiver's live sessions.
type OutboundEvent struct {
	Type string             `json:"type"`
	Data domain.ChatMessage `json:"data"`
}

// ErrorEvent is a non-fatal error reported back to the offending sender
// only. The connection stays open.
type ErrorEvent struct {
	Error string `json:"error"`
}

// NewMessageEvent builds the fan-out event for a persisted message.
func NewMessageEvent(m domain.ChatMessage) OutboundEvent {
	return OutboundEvent{Type: EventChatMessage, Data: m}
}
