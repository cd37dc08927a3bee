package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
// A zero Limit returns every item.
type QueryOpts struct {
	Limit  int
	Offset int
}

// ItemRepository is the persistence interface for wardrobe items.
// Every method is scoped to an owner; items of other owners are invisible.
//
// Implementations return domain.ErrItemNotFound, domain.ErrItemAlreadyExists
// or an error wrapping domain.ErrStoreUnavailable.
type ItemRepository interface {
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, ownerID uuid.UUID, id models.ItemID) (*models.Item, error)

	// FindByOwnerID returns the owner's items in insertion order together
	// with the total count ignoring pagination.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID, opts QueryOpts) ([]*models.Item, int, error)

	Delete(ctx context.Context, ownerID uuid.UUID, id models.ItemID) error
	Exists(ctx context.Context, ownerID uuid.UUID, id models.ItemID) (bool, error)
}
