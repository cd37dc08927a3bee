package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WardrobeItem struct {
	OwnerID      uuid.UUID
	ID           string
	Seq          int64
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
