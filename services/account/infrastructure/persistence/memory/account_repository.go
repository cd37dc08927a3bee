// Package memory keeps accounts in process memory. It backs the API when no
// database is configured and the account service tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/wardrobecapital/wardrobe/services/account/domain"
	"github.com/wardrobecapital/wardrobe/services/account/domain/models"
	"github.com/wardrobecapital/wardrobe/services/account/domain/repositories"
)

// AccountRepository is a map-backed repositories.AccountRepository.
type AccountRepository struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]models.Account
	byUsername map[string]uuid.UUID // lower-cased
}

var _ repositories.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository returns an empty AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byID:       make(map[uuid.UUID]models.Account),
		byUsername: make(map[string]uuid.UUID),
	}
}

func (r *AccountRepository) Save(ctx context.Context, account *models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := strings.ToLower(account.Username)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byUsername[key]; taken {
		return domain.ErrUsernameTaken
	}
	r.byID[account.ID] = *account
	r.byUsername[key] = account.ID
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a := r.byID[id]
	return &a, nil
}
