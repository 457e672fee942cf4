// Package account stores visitor accounts and answers membership and
// credential queries. Two interchangeable stores implement Store: a
// process-lifetime map and a single relational users table.
package account

import (
	"context"
	"regexp"
	"strings"

	"predictive-disease-detection/internal/apperrors"
)

// AllowedDomain is the only email domain accepted at signup and login.
const AllowedDomain = "@gmail.com"

var emailShape = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

var (
	// ErrAlreadyExists indicates the normalized email is already registered.
	ErrAlreadyExists = apperrors.New(apperrors.CodeAlreadyExists, "This email is already registered. Please login.")
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "Invalid email or password. Please try again.")
	// ErrInvalidEmail rejects emails that are malformed or outside AllowedDomain.
	ErrInvalidEmail = apperrors.New(apperrors.CodeValidation, "Please enter a valid Gmail address (e.g., example@gmail.com).")
)

// Account is a registered user.
type Account struct {
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
}

// Store is the account capability consumed by the session layer.
type Store interface {
	// Register inserts a new account, failing with ErrAlreadyExists when the
	// normalized email is taken.
	Register(ctx context.Context, name, email, password string) error
	// Authenticate returns the account whose normalized email and password
	// match, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (Account, error)
}

// NormalizeEmail trims and lower-cases an email into its lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email has the local@domain.tld shape and belongs
// to AllowedDomain once normalized.
func ValidEmail(email string) bool {
	normalized := NormalizeEmail(email)
	if !emailShape.MatchString(normalized) {
		return false
	}
	return strings.HasSuffix(normalized, AllowedDomain)
}
