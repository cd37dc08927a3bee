// Package memory holds an in-process ItemRepository for tests, the CLI's
// demo mode and local runs without PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/repositories"
)

type itemKey struct {
	owner uuid.UUID
	id    models.ItemID
}

// ItemRepository keeps items in memory. Stored items are copied on the way
// in and out so callers cannot mutate the store.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[itemKey]models.Item
	order map[uuid.UUID][]models.ItemID
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items: make(map[itemKey]models.Item),
		order: make(map[uuid.UUID][]models.ItemID),
	}
}

func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	k := itemKey{item.OwnerID, item.ID}
	if _, ok := r.items[k]; ok {
		return domain.ErrItemAlreadyExists
	}
	r.items[k] = *item
	r.order[item.OwnerID] = append(r.order[item.OwnerID], item.ID)
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, ownerID uuid.UUID, id models.ItemID) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemKey{ownerID, id}]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (r *ItemRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.order[ownerID]
	total := len(ids)

	start := min(max(opts.Offset, 0), total)
	end := total
	if opts.Limit > 0 {
		end = min(start+opts.Limit, total)
	}

	items := make([]*models.Item, 0, end-start)
	for _, id := range ids[start:end] {
		item := r.items[itemKey{ownerID, id}]
		items = append(items, &item)
	}
	return items, total, nil
}

func (r *ItemRepository) Delete(ctx context.Context, ownerID uuid.UUID, id models.ItemID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	k := itemKey{ownerID, id}
	if _, ok := r.items[k]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, k)

	ids := r.order[ownerID]
	for i, existing := range ids {
		if existing == id {
			r.order[ownerID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ItemRepository) Exists(ctx context.Context, ownerID uuid.UUID, id models.ItemID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[itemKey{ownerID, id}]
	return ok, nil
}
