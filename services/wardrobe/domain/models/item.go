package models

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemID is the opaque identifier of an item. Clients may choose it (the
// front-end generates ids before the request is sent); otherwise one is
// generated. It is unique within an owner's collection and never changes.
type ItemID string

const maxItemIDLength = 64

// MaxWearsPerYear is the largest wear count an item can record; it is the
// range of the integer column items are stored in.
const MaxWearsPerYear = math.MaxInt32

// NewItemID validates s as an item id. An empty s yields a fresh UUID string.
func NewItemID(s string) (ItemID, error) {
	if s == "" {
		return ItemID(uuid.NewString()), nil
	}
	if len(s) > maxItemIDLength {
		return "", fmt.Errorf("item id must not exceed %d characters", maxItemIDLength)
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("item id must not contain whitespace")
	}
	return ItemID(s), nil
}

// String returns the underlying string value.
func (id ItemID) String() string {
	return string(id)
}

// Item is the core aggregate for this bounded context: one clothing purchase
// recorded as an asset. Items are created once and deleted wholesale.
type Item struct {
	ID           ItemID
	OwnerID      uuid.UUID // always filter by this in queries
	Name         ItemName
	Brand        string
	Category     Category
	Price        decimal.Decimal
	PurchaseDate time.Time
	WearsPerYear int
	ImageURL     string
	Material     string
}

// NewItemParams carries the user-supplied fields of a new Item.
type NewItemParams struct {
	ID           string
	Name         ItemName
	Brand        string
	Category     Category
	Price        decimal.Decimal
	PurchaseDate time.Time // zero means now
	WearsPerYear int
	ImageURL     string
	Material     string
}

// NewItem constructs an Item owned by ownerID. A missing id is generated and
// a zero purchase date defaults to now. The purchase date is normalised to
// UTC with microsecond precision, which is what PostgreSQL stores.
func NewItem(ownerID uuid.UUID, p NewItemParams) (*Item, error) {
	id, err := NewItemID(p.ID)
	if err != nil {
		return nil, err
	}

	purchased := p.PurchaseDate
	if purchased.IsZero() {
		purchased = time.Now()
	}

	return &Item{
		ID:           id,
		OwnerID:      ownerID,
		Name:         p.Name,
		Brand:        strings.TrimSpace(p.Brand),
		Category:     p.Category.Canonical(),
		Price:        p.Price,
		PurchaseDate: purchased.UTC().Truncate(time.Microsecond),
		WearsPerYear: p.WearsPerYear,
		ImageURL:     strings.TrimSpace(p.ImageURL),
		Material:     strings.TrimSpace(p.Material),
	}, nil
}
