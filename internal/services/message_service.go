package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isdelr/rocket-be/internal/models"
)

// MessageServiceProvider defines the interface for message services.
type MessageServiceProvider interface {
	GetAllMessages(ctx context.Context) ([]models.Message, error)
	GetMessageByID(ctx context.Context, id int64) (models.Message, error)
	CreateMessage(ctx context.Context, text string, userID int64) (models.Message, error)
	DeleteMessage(ctx context.Context, id int64) error
}

// MessageService provides business logic for messages.
type MessageService struct {
	db  *sql.DB
	now func() time.Time
}

// NewMessageService creates a new MessageService.
func NewMessageService(db *sql.DB) *MessageService {
	return &MessageService{db: db, now: time.Now}
}

// GetAllMessages returns every message ordered by id.
func (s *MessageService) GetAllMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, text, user_id, created_at, updated_at FROM messages ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Text, &m.UserID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// GetMessageByID retrieves a single message.
func (s *MessageService) GetMessageByID(ctx context.Context, id int64) (models.Message, error) {
	var m models.Message
	err := s.db.QueryRowContext(ctx, "SELECT id, text, user_id, created_at, updated_at FROM messages WHERE id = ?", id).
		Scan(&m.ID, &m.Text, &m.UserID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Message{}, ErrMessageNotFound
		}
		return models.Message{}, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

// CreateMessage stores a message authored by userID.
func (s *MessageService) CreateMessage(ctx context.Context, text string, userID int64) (models.Message, error) {
	now := s.now().UTC()
	m := models.Message{Text: text, UserID: userID, CreatedAt: now, UpdatedAt: now}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO messages (text, user_id, created_at, updated_at) VALUES (?, ?, ?, ?)",
		m.Text, m.UserID, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return models.Message{}, fmt.Errorf("db error: %w", err)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return models.Message{}, err
	}
	return m, nil
}

// DeleteMessage removes a message.
func (s *MessageService) DeleteMessage(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM messages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrMessageNotFound
	}
	return nil
}
