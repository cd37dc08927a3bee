package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/wardrobecapital/wardrobe/pkg/cache"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/repositories"
	domainsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/domain/services"
)

// ItemCache is the read-model cache consulted by Get. *cache.ItemCache
// implements it.
type ItemCache interface {
	Get(ctx context.Context, ownerID uuid.UUID, itemID string) (*pkgcache.CachedItem, error)
	Set(ctx context.Context, item *pkgcache.CachedItem) error
	Evict(ctx context.Context, ownerID uuid.UUID, itemID string) error
	Delete(ctx context.Context, ownerID uuid.UUID, itemID string) error
}

// AddItemInput carries the user-supplied fields of a new item.
type AddItemInput struct {
	ID           string
	Name         string
	Brand        string
	Category     string
	Price        decimal.Decimal
	PurchaseDate time.Time
	WearsPerYear int
	ImageURL     string
	Material     string
}

// ItemService orchestrates the item store. Event publishing is handled by
// the repository (outbox). Single reads go through the Redis cache when one
// is configured.
type ItemService struct {
	repo  repositories.ItemRepository
	cache ItemCache
	log   logger.Logger
}

// NewItemService returns an ItemService. itemCache may be nil.
func NewItemService(repo repositories.ItemRepository, itemCache ItemCache, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, cache: itemCache, log: log}
}

// Add validates and persists an item. The repository publishes the added event.
func (s *ItemService) Add(ctx context.Context, ownerID uuid.UUID, in AddItemInput) (*models.Item, error) {
	name, err := models.NewItemName(in.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidItemName, err)
	}

	item, err := models.NewItem(ownerID, models.NewItemParams{
		ID:           in.ID,
		Name:         name,
		Brand:        in.Brand,
		Category:     models.Category(in.Category),
		Price:        in.Price,
		PurchaseDate: in.PurchaseDate,
		WearsPerYear: in.WearsPerYear,
		ImageURL:     in.ImageURL,
		Material:     in.Material,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidItem, err)
	}

	if err := domainsvcs.ValidateItemForCreation(item); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidItem, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	// An earlier item with this id may have left a tombstone.
	if s.cache != nil {
		if err := s.cache.Delete(ctx, ownerID, item.ID.String()); err != nil {
			s.log.WarnContext(ctx, "item cache tombstone clear failed", "item_id", item.ID, "error", err)
		}
	}
	return item, nil
}

// Get retrieves an item using a read-through cache:
//  1. Check Redis first.
//  2. On a miss or cache error, query the store.
//  3. Warm the cache asynchronously with the store result.
func (s *ItemService) Get(ctx context.Context, ownerID uuid.UUID, id models.ItemID) (*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, ownerID, id.String())
		if err == nil {
			return fromCache(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		entry := toCache(item)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := s.cache.Set(ctx, entry); err != nil {
				s.log.WarnContext(ctx, "item cache warm failed", "item_id", entry.ID, "error", err)
			}
		}()
	}
	return item, nil
}

// List returns all of the owner's items in insertion order.
func (s *ItemService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Item, error) {
	items, _, err := s.repo.FindByOwnerID(ctx, ownerID, repositories.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []*models.Item{}
	}
	return items, nil
}

// Delete removes an item and then evicts its cache entry, so a following Get
// cannot observe the deleted item, even if a cache warm that read the item
// earlier finishes later.
func (s *ItemService) Delete(ctx context.Context, ownerID uuid.UUID, id models.ItemID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Evict(ctx, ownerID, id.String()); err != nil {
			s.log.WarnContext(ctx, "item cache invalidation failed", "item_id", id, "error", err)
		}
	}
	return nil
}

// ToCachedItem converts an item to its cache representation.
func ToCachedItem(item *models.Item) *pkgcache.CachedItem {
	return toCache(item)
}

func toCache(item *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:           item.ID.String(),
		OwnerID:      item.OwnerID,
		Name:         item.Name.String(),
		Brand:        item.Brand,
		Category:     item.Category.String(),
		Price:        item.Price,
		PurchaseDate: item.PurchaseDate,
		WearsPerYear: item.WearsPerYear,
		ImageURL:     item.ImageURL,
		Material:     item.Material,
	}
}

func fromCache(c *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:           models.ItemID(c.ID),
		OwnerID:      c.OwnerID,
		Name:         models.ItemName(c.Name),
		Brand:        c.Brand,
		Category:     models.Category(c.Category),
		Price:        c.Price,
		PurchaseDate: c.PurchaseDate.UTC(),
		WearsPerYear: c.WearsPerYear,
		ImageURL:     c.ImageURL,
		Material:     c.Material,
	}
}
