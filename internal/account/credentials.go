package account

import (
	"crypto/subtle"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Credentials turns a password into its stored form and checks attempts
// against it. Stores call only this interface so the scheme can change
// without touching call sites.
type Credentials interface {
	Hash(password string) (string, error)
	Matches(stored, attempt string) bool
}

// PlaintextCredentials stores passwords as-is and compares them exactly.
// It reproduces the deployed behavior and is not safe for production data.
type PlaintextCredentials struct{}

func (PlaintextCredentials) Hash(password string) (string, error) {
	return password, nil
}

func (PlaintextCredentials) Matches(stored, attempt string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(attempt)) == 1
}

// BcryptCredentials stores bcrypt hashes.
type BcryptCredentials struct {
	Cost int
}

func (c BcryptCredentials) Hash(password string) (string, error) {
	cost := c.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("generate password hash: %w", err)
	}
	return string(hashed), nil
}

func (BcryptCredentials) Matches(stored, attempt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(attempt)) == nil
}

// CredentialsFor resolves a configured scheme name.
func CredentialsFor(scheme string, bcryptCost int) (Credentials, error) {
	switch scheme {
	case "", "plaintext":
		return PlaintextCredentials{}, nil
	case "bcrypt":
		if bcryptCost != 0 && (bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost) {
			return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", bcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
		}
		return BcryptCredentials{Cost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// decoy is the stored credential checked when an email is unknown; a miss
// and a wrong password each cost one comparison.
type decoy struct {
	once   sync.Once
	stored string
}

func (d *decoy) compare(creds Credentials, attempt string) {
	d.once.Do(func() {
		d.stored, _ = creds.Hash("decoy password")
	})
	creds.Matches(d.stored, attempt)
}
