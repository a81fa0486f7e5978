package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ChesterTeam/UniMarket/internal/model"
)

// MessageRepository persists chat messages.
type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *model.Message) error {
	const q = `
		INSERT INTO messages
			(id, listing_id, sender_id, receiver_id, body, is_read,
			 is_auto_reply, created_at)
		VALUES
			(:id, :listing_id, :sender_id, :receiver_id, :body, :is_read,
			 :is_auto_reply, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, q, m); err != nil {
		return fmt.Errorf("MessageRepository.Create: %w", err)
	}
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (*model.Message, error) {
	var m model.Message
	q := r.db.Rebind(`SELECT * FROM messages WHERE id = ?`)
	if err := r.db.GetContext(ctx, &m, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("MessageRepository.GetByID: %w", err)
	}
	return &m, nil
}

// Conversation returns the messages on a listing that involve userID, oldest
// first.
func (r *MessageRepository) Conversation(ctx context.Context, listingID, userID string) ([]model.Message, error) {
	var msgs []model.Message
	q := r.db.Rebind(`
		SELECT * FROM messages
		WHERE listing_id = ? AND (sender_id = ? OR receiver_id = ?)
		ORDER BY created_at ASC, id ASC`)
	if err := r.db.SelectContext(ctx, &msgs, q, listingID, userID, userID); err != nil {
		return nil, fmt.Errorf("MessageRepository.Conversation: %w", err)
	}
	return msgs, nil
}

// ByUser returns every message the user sent or received, newest first.
func (r *MessageRepository) ByUser(ctx context.Context, userID string) ([]model.Message, error) {
	var msgs []model.Message
	q := r.db.Rebind(`
		SELECT * FROM messages
		WHERE sender_id = ? OR receiver_id = ?
		ORDER BY created_at DESC, id DESC`)
	if err := r.db.SelectContext(ctx, &msgs, q, userID, userID); err != nil {
		return nil, fmt.Errorf("MessageRepository.ByUser: %w", err)
	}
	return msgs, nil
}

// MarkRead flags a message as read. Only the receiver's mark counts, so the
// receiver id is part of the predicate.
func (r *MessageRepository) MarkRead(ctx context.Context, id, receiverID string) error {
	q := r.db.Rebind(`UPDATE messages SET is_read = TRUE WHERE id = ? AND receiver_id = ?`)
	res, err := r.db.ExecContext(ctx, q, id, receiverID)
	if err != nil {
		return fmt.Errorf("MessageRepository.MarkRead: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// UnreadCount counts messages addressed to userID that are still unread.
func (r *MessageRepository) UnreadCount(ctx context.Context, userID string) (int, error) {
	var count int
	q := r.db.Rebind(`SELECT COUNT(1) FROM messages WHERE receiver_id = ? AND is_read = FALSE`)
	if err := r.db.GetContext(ctx, &count, q, userID); err != nil {
		return 0, fmt.Errorf("MessageRepository.UnreadCount: %w", err)
	}
	return count, nil
}
