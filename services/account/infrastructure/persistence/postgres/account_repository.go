package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wardrobecapital/wardrobe/pkg/database"
	"github.com/wardrobecapital/wardrobe/services/account/domain"
	"github.com/wardrobecapital/wardrobe/services/account/domain/models"
	"github.com/wardrobecapital/wardrobe/services/account/domain/repositories"
	"github.com/wardrobecapital/wardrobe/services/account/infrastructure/persistence/postgres/db"
)

const uniqueViolation = "23505"

// AccountRepository implements repositories.AccountRepository against PostgreSQL.
type AccountRepository struct {
	q *db.Queries
}

var _ repositories.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository returns an AccountRepository backed by the given pool.
func NewAccountRepository(database *database.Database) *AccountRepository {
	return &AccountRepository{q: db.New(database.DB())}
}

// Save inserts a new account. Returns ErrUsernameTaken on a case-insensitive
// username clash.
func (r *AccountRepository) Save(ctx context.Context, a *models.Account) error {
	err := r.q.InsertAccount(ctx, db.InsertAccountParams{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrUsernameTaken
		}
		return storeError("insert account", err)
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	row, err := r.q.GetAccountByID(ctx, id)
	if err != nil {
		return nil, storeError("get account", err)
	}
	return rowToAccount(row), nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	row, err := r.q.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, storeError("get account by username", err)
	}
	return rowToAccount(row), nil
}

func storeError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrAccountNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrAccountStoreUnavailable, err)
}

func rowToAccount(row db.Account) *models.Account {
	return &models.Account{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
	}
}
