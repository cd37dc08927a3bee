package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/wardrobecapital/wardrobe/services/account/domain/models"
)

// AccountRepository persists accounts. Usernames are unique regardless of case.
type AccountRepository interface {
	// Save inserts a new account. Returns ErrUsernameTaken when the username
	// is already used.
	Save(ctx context.Context, account *models.Account) error

	// GetByID returns ErrAccountNotFound when no account has the id.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)

	// GetByUsername matches case-insensitively. Returns ErrAccountNotFound
	// when no account matches.
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}
