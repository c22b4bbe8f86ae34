package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/isdelr/rocket-be/internal/models"
)

// ItemServiceProvider defines the interface for item services.
type ItemServiceProvider interface {
	GetAllItems(ctx context.Context) ([]models.Item, error)
	GetItemByID(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, name string) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// ItemService provides business logic for items.
type ItemService struct {
	db  *sql.DB
	now func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(db *sql.DB) *ItemService {
	return &ItemService{db: db, now: time.Now}
}

// GetAllItems returns every item ordered by id.
func (s *ItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, date, created_at, updated_at FROM items ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Date, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetItemByID retrieves a single item.
func (s *ItemService) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item
	err := s.db.QueryRowContext(ctx, "SELECT id, name, date, created_at, updated_at FROM items WHERE id = ?", id).
		Scan(&item.ID, &item.Name, &item.Date, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// CreateItem stores a new item dated now.
func (s *ItemService) CreateItem(ctx context.Context, name string) (models.Item, error) {
	now := s.now().UTC()
	item := models.Item{Name: name, Date: now, CreatedAt: now, UpdatedAt: now}

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO items (name, date, created_at, updated_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return models.Item{}, err
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, item.Name, item.Date, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return models.Item{}, fmt.Errorf("db error: %w", err)
	}
	if item.ID, err = res.LastInsertId(); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// DeleteItem removes an item.
func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrItemNotFound
	}
	return nil
}
