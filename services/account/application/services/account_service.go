package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/services/account/domain"
	"github.com/wardrobecapital/wardrobe/services/account/domain/models"
	"github.com/wardrobecapital/wardrobe/services/account/domain/repositories"
)

// dummyHash is compared against when the username is unknown so that login
// takes the same time whether or not the account exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("wardrobe-capital"), bcrypt.DefaultCost)

// AccountService registers accounts and checks credentials.
type AccountService struct {
	repo repositories.AccountRepository
	cost int
	log  logger.Logger
}

// NewAccountService returns an AccountService hashing with bcrypt at cost.
// A cost of 0 selects bcrypt.DefaultCost.
func NewAccountService(repo repositories.AccountRepository, cost int, log logger.Logger) *AccountService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &AccountService{repo: repo, cost: cost, log: log}
}

// Register creates an account. Returns ErrInvalidAccount for a malformed
// username or password and ErrUsernameTaken for a clash.
func (s *AccountService) Register(ctx context.Context, username, password string) (*models.Account, error) {
	if err := models.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidAccount, err)
	}
	if _, err := models.NormalizeUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidAccount, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	account, err := models.NewAccount(username, string(hash))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidAccount, err)
	}

	if err := s.repo.Save(ctx, account); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "account registered", "account_id", account.ID)
	return account, nil
}

// Login returns the account matching username and password, or
// ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.Account, error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrAccountNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.log.InfoContext(ctx, "login failed", "account_id", account.ID)
		return nil, domain.ErrInvalidCredentials
	}
	return account, nil
}

// Get returns the account with id.
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return s.repo.GetByID(ctx, id)
}
