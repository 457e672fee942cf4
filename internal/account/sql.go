package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"predictive-disease-detection/internal/database"
)

// SQLStore persists accounts in the users table. Duplicate emails are caught
// by the UNIQUE constraint, so concurrent signups for one address cannot
// both succeed.
type SQLStore struct {
	db          *database.DB
	credentials Credentials
	decoy       decoy
}

// NewSQLStore wraps an opened database. A nil creds defaults to plaintext.
func NewSQLStore(db *database.DB, creds Credentials) *SQLStore {
	if creds == nil {
		creds = PlaintextCredentials{}
	}
	return &SQLStore{db: db, credentials: creds}
}

func (s *SQLStore) Register(ctx context.Context, name, email, password string) error {
	stored, err := s.credentials.Hash(password)
	if err != nil {
		return err
	}
	createNewUserQuery := s.db.Rebind(`
		INSERT INTO users (name, email, password)
		VALUES (?, ?, ?)
	`)
	_, err = s.db.Conn().ExecContext(ctx, createNewUserQuery, name, NormalizeEmail(email), stored)
	if database.IsUniqueViolation(err) {
		return ErrAlreadyExists
	}
	if err != nil {
		log.Printf("Error creating new user: %v", err)
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *SQLStore) Authenticate(ctx context.Context, email, password string) (Account, error) {
	acct, err := s.find(ctx, NormalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		s.decoy.compare(s.credentials, password)
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, err
	}
	if !s.credentials.Matches(acct.Password, password) {
		return Account{}, ErrInvalidCredentials
	}
	return acct, nil
}

func (s *SQLStore) find(ctx context.Context, key string) (Account, error) {
	query := s.db.Rebind(`SELECT name, email, password FROM users WHERE email = ?`)
	var acct Account
	err := s.db.Conn().GetContext(ctx, &acct, query, key)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Account{}, fmt.Errorf("query user: %w", err)
	}
	return acct, err
}
