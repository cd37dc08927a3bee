package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const countItemsByOwnerID = `-- name: CountItemsByOwnerID :one
SELECT count(*) FROM wardrobe_items WHERE owner_id = $1
`

func (q *Queries) CountItemsByOwnerID(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	row := q.db.QueryRowContext(ctx, countItemsByOwnerID, ownerID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteItem = `-- name: DeleteItem :execrows
DELETE FROM wardrobe_items WHERE owner_id = $1 AND id = $2
`

type DeleteItemParams struct {
	OwnerID uuid.UUID
	ID      string
}

func (q *Queries) DeleteItem(ctx context.Context, arg DeleteItemParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteItem, arg.OwnerID, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const findItemsByOwnerID = `-- name: FindItemsByOwnerID :many
SELECT owner_id, id, seq, name, brand, category, price, purchase_date, wears_per_year, image_url, material, created_at
FROM wardrobe_items
WHERE owner_id = $1
ORDER BY seq
LIMIT NULLIF($2::int, 0) OFFSET $3
`

type FindItemsByOwnerIDParams struct {
	OwnerID uuid.UUID
	Limit   int32
	Offset  int32
}

func (q *Queries) FindItemsByOwnerID(ctx context.Context, arg FindItemsByOwnerIDParams) ([]WardrobeItem, error) {
	rows, err := q.db.QueryContext(ctx, findItemsByOwnerID, arg.OwnerID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WardrobeItem
	for rows.Next() {
		var i WardrobeItem
		if err := rows.Scan(
			&i.OwnerID,
			&i.ID,
			&i.Seq,
			&i.Name,
			&i.Brand,
			&i.Category,
			&i.Price,
			&i.PurchaseDate,
			&i.WearsPerYear,
			&i.ImageUrl,
			&i.Material,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getItemByID = `-- name: GetItemByID :one
SELECT owner_id, id, seq, name, brand, category, price, purchase_date, wears_per_year, image_url, material, created_at
FROM wardrobe_items
WHERE owner_id = $1 AND id = $2
`

type GetItemByIDParams struct {
	OwnerID uuid.UUID
	ID      string
}

func (q *Queries) GetItemByID(ctx context.Context, arg GetItemByIDParams) (WardrobeItem, error) {
	row := q.db.QueryRowContext(ctx, getItemByID, arg.OwnerID, arg.ID)
	var i WardrobeItem
	err := row.Scan(
		&i.OwnerID,
		&i.ID,
		&i.Seq,
		&i.Name,
		&i.Brand,
		&i.Category,
		&i.Price,
		&i.PurchaseDate,
		&i.WearsPerYear,
		&i.ImageUrl,
		&i.Material,
		&i.CreatedAt,
	)
	return i, err
}

const insertItem = `-- name: InsertItem :exec
INSERT INTO wardrobe_items (owner_id, id, name, brand, category, price, purchase_date, wears_per_year, image_url, material, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

type InsertItemParams struct {
	OwnerID      uuid.UUID
	ID           string
	Name         string
	Brand        string
	Category     string
	Price        decimal.Decimal
	PurchaseDate time.Time
	WearsPerYear int32
	ImageUrl     string
	Material     string
	CreatedAt    time.Time
}

func (q *Queries) InsertItem(ctx context.Context, arg InsertItemParams) error {
	_, err := q.db.ExecContext(ctx, insertItem,
		arg.OwnerID,
		arg.ID,
		arg.Name,
		arg.Brand,
		arg.Category,
		arg.Price,
		arg.PurchaseDate,
		arg.WearsPerYear,
		arg.ImageUrl,
		arg.Material,
		arg.CreatedAt,
	)
	return err
}

const itemExists = `-- name: ItemExists :one
SELECT EXISTS(SELECT 1 FROM wardrobe_items WHERE owner_id = $1 AND id = $2)
`

type ItemExistsParams struct {
	OwnerID uuid.UUID
	ID      string
}

func (q *Queries) ItemExists(ctx context.Context, arg ItemExistsParams) (bool, error) {
	row := q.db.QueryRowContext(ctx, itemExists, arg.OwnerID, arg.ID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
