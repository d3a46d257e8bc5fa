package domain

import "time"

// ChatMessage is one persisted direct message. Immutable once created
// except for IsRead, which flips to true when the receiver fetches the
// conversation.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}
