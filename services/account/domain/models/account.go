package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// Account is a login. Its ID is the owner id of every item the account
// records.
type Account struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewAccount returns an Account with a fresh id. passwordHash must already be
// hashed.
func NewAccount(username, passwordHash string) (*Account, error) {
	username, err := NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash must be set")
	}
	return &Account{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}, nil
}

// NormalizeUsername trims s and checks it is 3–64 characters of letters,
// digits, '.', '_' or '-'. Case is preserved; uniqueness ignores it.
func NormalizeUsername(s string) (string, error) {
	s = strings.TrimSpace(s)
	n := len([]rune(s))
	if n < minUsernameLength || n > maxUsernameLength {
		return "", fmt.Errorf("username must be %d to %d characters", minUsernameLength, maxUsernameLength)
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("._-", r) {
			return "", fmt.Errorf("username may only contain letters, digits, '.', '_' and '-'")
		}
	}
	return s, nil
}

// ValidatePassword checks the length bounds of a plain-text password.
func ValidatePassword(p string) error {
	if len(p) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if len(p) > maxPasswordLength {
		return fmt.Errorf("password must not exceed %d bytes", maxPasswordLength)
	}
	return nil
}
