package account

import (
	"context"
	"sync"
)

// MemoryStore keeps accounts for the lifetime of the process.
type MemoryStore struct {
	mu          sync.RWMutex
	accounts    map[string]Account
	credentials Credentials
	decoy       decoy
}

// NewMemoryStore creates an empty store. A nil creds defaults to plaintext.
func NewMemoryStore(creds Credentials) *MemoryStore {
	if creds == nil {
		creds = PlaintextCredentials{}
	}
	return &MemoryStore{
		accounts:    make(map[string]Account),
		credentials: creds,
	}
}

func (s *MemoryStore) Register(_ context.Context, name, email, password string) error {
	key := NormalizeEmail(email)
	stored, err := s.credentials.Hash(password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[key]; exists {
		return ErrAlreadyExists
	}
	s.accounts[key] = Account{Name: name, Email: key, Password: stored}
	return nil
}

func (s *MemoryStore) Authenticate(_ context.Context, email, password string) (Account, error) {
	key := NormalizeEmail(email)

	s.mu.RLock()
	acct, exists := s.accounts[key]
	s.mu.RUnlock()
	if !exists {
		s.decoy.compare(s.credentials, password)
		return Account{}, ErrInvalidCredentials
	}
	if !s.credentials.Matches(acct.Password, password) {
		return Account{}, ErrInvalidCredentials
	}
	return acct, nil
}
