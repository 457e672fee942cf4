// Package feedback stores messages left on the Feedback & Contact page.
package feedback

import (
	"context"
	"strings"
	"time"

	"predictive-disease-detection/internal/apperrors"
)

// MaxMessageLength bounds a single message.
const MaxMessageLength = 2000

var (
	ErrEmptyMessage  = apperrors.New(apperrors.CodeValidation, "Please enter a message.")
	ErrLongMessage   = apperrors.New(apperrors.CodeValidation, "Message is too long.")
	ErrInvalidRating = apperrors.New(apperrors.CodeValidation, "Rating must be between 1 and 5.")
)

// Entry is one submitted message. Rating 0 means no rating was given.
type Entry struct {
	Name      string
	Email     string
	Message   string
	Rating    int
	CreatedAt time.Time
}

// Store persists feedback entries.
type Store interface {
	Save(ctx context.Context, e Entry) error
	ListByEmail(ctx context.Context, email string) ([]Entry, error)
}

// Normalize trims and validates an entry.
func Normalize(e Entry) (Entry, error) {
	e.Message = strings.TrimSpace(e.Message)
	if e.Message == "" {
		return Entry{}, ErrEmptyMessage
	}
	if len([]rune(e.Message)) > MaxMessageLength {
		return Entry{}, ErrLongMessage
	}
	if e.Rating < 0 || e.Rating > 5 {
		return Entry{}, ErrInvalidRating
	}
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	return e, nil
}
