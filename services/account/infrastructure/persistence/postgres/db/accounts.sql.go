package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const getAccountByID = `-- name: GetAccountByID :one
SELECT id, username, password_hash, created_at FROM accounts WHERE id = $1
`

func (q *Queries) GetAccountByID(ctx context.Context, id uuid.UUID) (Account, error) {
	row := q.db.QueryRowContext(ctx, getAccountByID, id)
	var i Account
	err := row.Scan(&i.ID, &i.Username, &i.PasswordHash, &i.CreatedAt)
	return i, err
}

const getAccountByUsername = `-- name: GetAccountByUsername :one
SELECT id, username, password_hash, created_at FROM accounts WHERE lower(username) = lower($1)
`

func (q *Queries) GetAccountByUsername(ctx context.Context, username string) (Account, error) {
	row := q.db.QueryRowContext(ctx, getAccountByUsername, username)
	var i Account
	err := row.Scan(&i.ID, &i.Username, &i.PasswordHash, &i.CreatedAt)
	return i, err
}

const insertAccount = `-- name: InsertAccount :exec
INSERT INTO accounts (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)
`

type InsertAccountParams struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

func (q *Queries) InsertAccount(ctx context.Context, arg InsertAccountParams) error {
	_, err := q.db.ExecContext(ctx, insertAccount, arg.ID, arg.Username, arg.PasswordHash, arg.CreatedAt)
	return err
}
