// Package subscribers holds the wardrobe's event handlers run by the worker.
package subscribers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/wardrobecapital/wardrobe/pkg/events"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	appsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/application/services"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain"
	domainevents "github.com/wardrobecapital/wardrobe/services/wardrobe/domain/events"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/repositories"
)

// CacheProjector keeps the Redis item cache in step with the item store.
// Handlers are idempotent; the event bus retries them on error.
type CacheProjector struct {
	items repositories.ItemRepository
	cache appsvcs.ItemCache
	log   logger.Logger
}

// NewCacheProjector returns a CacheProjector reading from items and writing to cache.
func NewCacheProjector(items repositories.ItemRepository, cache appsvcs.ItemCache, log logger.Logger) *CacheProjector {
	return &CacheProjector{items: items, cache: cache, log: log}
}

// HandleItemAdded loads the added item and writes it to the cache. An item
// deleted before the event arrives is skipped.
func (p *CacheProjector) HandleItemAdded(ctx context.Context, msg *message.Message) error {
	evt, err := events.Decode[domainevents.ItemAddedEvent](msg)
	if err != nil {
		// a malformed payload never becomes valid; drop it
		p.log.ErrorContext(ctx, "dropping item added event", "error", err)
		return nil
	}

	item, err := p.items.GetByID(ctx, evt.OwnerID, models.ItemID(evt.ItemID))
	if errors.Is(err, domain.ErrItemNotFound) {
		p.log.InfoContext(ctx, "item gone before cache warm", "item_id", evt.ItemID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load item %s: %w", evt.ItemID, err)
	}

	if err := p.cache.Set(ctx, appsvcs.ToCachedItem(item)); err != nil {
		// Cache warming is best-effort; log but do not fail the handler.
		p.log.WarnContext(ctx, "cache warm failed for item added",
			"item_id", evt.ItemID, "error", err)
		return nil
	}
	p.log.InfoContext(ctx, "cache warmed", "item_id", evt.ItemID, "owner_id", evt.OwnerID)
	return nil
}

// HandleItemDeleted evicts the deleted item from the cache, leaving a
// tombstone so a late HandleItemAdded cannot restore it.
func (p *CacheProjector) HandleItemDeleted(ctx context.Context, msg *message.Message) error {
	evt, err := events.Decode[domainevents.ItemDeletedEvent](msg)
	if err != nil {
		p.log.ErrorContext(ctx, "dropping item deleted event", "error", err)
		return nil
	}

	if err := p.cache.Evict(ctx, evt.OwnerID, evt.ItemID); err != nil {
		return fmt.Errorf("evict item %s: %w", evt.ItemID, err)
	}
	p.log.InfoContext(ctx, "cache evicted", "item_id", evt.ItemID, "owner_id", evt.OwnerID)
	return nil
}
