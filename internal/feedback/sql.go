package feedback

import (
	"context"
	"fmt"
	"time"

	"predictive-disease-detection/internal/database"
)

// SQLStore persists feedback in the feedback table.
type SQLStore struct {
	db *database.DB
}

func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Save(ctx context.Context, e Entry) error {
	query := s.db.Rebind(`
		INSERT INTO feedback (name, email, message, rating, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if _, err := s.db.Conn().ExecContext(ctx, query, e.Name, e.Email, e.Message, e.Rating, e.CreatedAt.UTC().UnixMilli()); err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

type feedbackRow struct {
	Name      string `db:"name"`
	Email     string `db:"email"`
	Message   string `db:"message"`
	Rating    int    `db:"rating"`
	CreatedAt int64  `db:"created_at"`
}

func (s *SQLStore) ListByEmail(ctx context.Context, email string) ([]Entry, error) {
	query := s.db.Rebind(`
		SELECT name, email, message, rating, created_at
		FROM feedback WHERE email = ? ORDER BY id
	`)
	var rows []feedbackRow
	if err := s.db.Conn().SelectContext(ctx, &rows, query, email); err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			Name:      row.Name,
			Email:     row.Email,
			Message:   row.Message,
			Rating:    row.Rating,
			CreatedAt: time.UnixMilli(row.CreatedAt).UTC(),
		})
	}
	return entries, nil
}
