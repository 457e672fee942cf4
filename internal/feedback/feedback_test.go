package feedback

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"predictive-disease-detection/internal/database"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize(Entry{Name: " A ", Email: " A@Gmail.com", Message: "  thanks  ", Rating: 5})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Name != "A" || got.Email != "a@gmail.com" || got.Message != "thanks" {
		t.Fatalf("Normalize() = %+v", got)
	}

	tests := []struct {
		name  string
		entry Entry
		want  error
	}{
		{name: "empty", entry: Entry{Message: "   "}, want: ErrEmptyMessage},
		{name: "long", entry: Entry{Message: strings.Repeat("x", MaxMessageLength+1)}, want: ErrLongMessage},
		{name: "rating", entry: Entry{Message: "ok", Rating: 6}, want: ErrInvalidRating},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Normalize(tt.entry); !errors.Is(err, tt.want) {
				t.Fatalf("Normalize() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStores(t *testing.T) {
	db, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "feedback.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	stores := map[string]Store{"memory": NewMemoryStore(), "sqlite": NewSQLStore(db)}
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := store.Save(ctx, Entry{Name: "A", Email: "a@gmail.com", Message: "first", Rating: 4, CreatedAt: created}); err != nil {
				t.Fatalf("Save: %v", err)
			}
			_ = store.Save(ctx, Entry{Name: "B", Email: "b@gmail.com", Message: "other", CreatedAt: created})
			_ = store.Save(ctx, Entry{Name: "A", Email: "a@gmail.com", Message: "second", CreatedAt: created})

			entries, err := store.ListByEmail(ctx, "a@gmail.com")
			if err != nil {
				t.Fatalf("ListByEmail: %v", err)
			}
			if len(entries) != 2 || entries[0].Message != "first" || entries[1].Message != "second" {
				t.Fatalf("entries = %+v", entries)
			}
			if entries[0].Rating != 4 || !entries[0].CreatedAt.Equal(created) {
				t.Fatalf("entry = %+v", entries[0])
			}
		})
	}
}
