package sqlite

import (
	"context"

	"github.com/psicoconecta/portal/internal/portal/domain"
)

type messagesRepo struct {
	db dbtx
}

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.ChatMessage) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chat_messages (id, sender_id, receiver_id, message, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.SenderID, m.ReceiverID, m.Message, m.IsRead, m.CreatedAt,
	)
	return err
}

func (r *messagesRepo) ListConversation(ctx context.Context, userA, userB string) ([]domain.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sender_id, receiver_id, message, is_read, created_at
		FROM chat_messages
		WHERE (sender_id = ? AND receiver_id = ?)
		   OR (sender_id = ? AND receiver_id = ?)
		ORDER BY created_at ASC, id ASC`,
		userA, userB, userB, userA,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Message, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *messagesRepo) MarkConversationRead(ctx context.Context, receiverID, senderID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE chat_messages SET is_read = TRUE
		WHERE receiver_id = ? AND sender_id = ? AND is_read = FALSE`,
		receiverID, senderID,
	)
	return err
}
