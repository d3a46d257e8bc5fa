package service

import (
	"context"
	"errors"
	"time"

	"github.com/psicoconecta/portal/internal/portal/chat"
	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/idx"
	"github.com/psicoconecta/portal/pkg/slogx"
)

var (
	ErrMissingFields   = errors.New("missing_fields")
	ErrUnknownReceiver = errors.New("unknown_receiver")
	ErrNotAllowed      = errors.New("not_allowed")
)

// ChatService is the messaging core: it persists messages, fans them out
// to live sessions, and serves conversation history. Both paths apply the
// same chat.Allowed policy.
type ChatService struct {
	Store    store.Store
	Registry chat.Registry
}

// Send routes one message from the admitted sender. The sender identity
// always comes from the connection, never from the payload. On success
// the persisted message is delivered to the sender's and receiver's live
// sessions only; a receiver without a live session still gets the message
// persisted.
func (s *ChatService) Send(ctx context.Context, sender domain.User, receiverID, message string) (domain.ChatMessage, error) {
	l := slogx.FromContext(ctx)

	if receiverID == "" || message == "" {
		return domain.ChatMessage{}, ErrMissingFields
	}

	receiver, err := s.Store.Users().GetUserByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ChatMessage{}, ErrUnknownReceiver
		}
		return domain.ChatMessage{}, err
	}

	if !chat.Allowed(sender.Role, receiver.Role) {
		l.Warn("message blocked by role policy",
			"sender_id", sender.ID,
			"receiver_id", receiver.ID,
		)
		return domain.ChatMessage{}, ErrNotAllowed
	}

	m := domain.ChatMessage{
		ID:         idx.New().String(),
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Message:    message,
		IsRead:     false,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Store.Messages().CreateMessage(ctx, m); err != nil {
		return domain.ChatMessage{}, err
	}

	// Fan out to both ends. Delivery is best effort: a dead session just
	// misses the live echo, the message is already persisted.
	event := chat.NewMessageEvent(m)
	for _, userID := range []string{m.SenderID, m.ReceiverID} {
		if sess, ok := s.Registry.Lookup(userID); ok {
			if err := sess.Deliver(event); err != nil {
				l.Warn("live delivery failed", "user_id", userID, "error", err)
			}
		}
	}

	return m, nil
}

// History returns the full conversation between the requester and the
// other user, oldest first, and marks the other user's messages to the
// requester as read. The role policy is re-applied here so a pairing that
// could never chat also cannot read.
func (s *ChatService) History(ctx context.Context, requesterID, otherID string) ([]domain.ChatMessage, error) {
	requester, err := s.Store.Users().GetUserByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	other, err := s.Store.Users().GetUserByID(ctx, otherID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownReceiver
		}
		return nil, err
	}

	if !chat.Allowed(requester.Role, other.Role) {
		return nil, ErrNotAllowed
	}

	msgs, err := s.Store.Messages().ListConversation(ctx, requester.ID, other.ID)
	if err != nil {
		return nil, err
	}

	// Fetching the conversation is what "reads" it.
	if err := s.Store.Messages().MarkConversationRead(ctx, requester.ID, other.ID); err != nil {
		return nil, err
	}

	return msgs, nil
}
