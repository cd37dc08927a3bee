package subscribers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/wardrobecapital/wardrobe/pkg/cache"
	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	domainevents "github.com/wardrobecapital/wardrobe/services/wardrobe/domain/events"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/infrastructure/persistence/memory"
)

// mapCache mirrors cache.ItemCache, tombstones included.
type mapCache struct {
	mu       sync.Mutex
	entries  map[string]*pkgcache.CachedItem
	evicted  map[string]bool
	evictErr error
}

func (c *mapCache) Get(_ context.Context, ownerID uuid.UUID, itemID string) (*pkgcache.CachedItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[pkgcache.ItemKey(ownerID, itemID)]
	if !ok {
		return nil, redis.Nil
	}
	return e, nil
}

func (c *mapCache) Set(_ context.Context, item *pkgcache.CachedItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := pkgcache.ItemKey(item.OwnerID, item.ID)
	if !c.evicted[key] {
		c.entries[key] = item
	}
	return nil
}

func (c *mapCache) Evict(_ context.Context, ownerID uuid.UUID, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.evictErr != nil {
		return c.evictErr
	}
	key := pkgcache.ItemKey(ownerID, itemID)
	delete(c.entries, key)
	c.evicted[key] = true
	return nil
}

func (c *mapCache) Delete(_ context.Context, ownerID uuid.UUID, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := pkgcache.ItemKey(ownerID, itemID)
	delete(c.entries, key)
	delete(c.evicted, key)
	return nil
}

func newProjector(t *testing.T) (*CacheProjector, *memory.ItemRepository, *mapCache) {
	t.Helper()
	repo := memory.NewItemRepository()
	c := &mapCache{entries: make(map[string]*pkgcache.CachedItem), evicted: make(map[string]bool)}
	log := logger.NewWithWriter(&config.Config{LogLevel: "error"}, io.Discard)
	return NewCacheProjector(repo, c, log), repo, c
}

func eventMessage(t *testing.T, evt any) *message.Message {
	t.Helper()
	payload, err := json.Marshal(evt)
	if err != nil {
		t.Fatal(err)
	}
	return message.NewMessage(watermill.NewUUID(), payload)
}

func TestHandleItemAdded_WarmsCache(t *testing.T) {
	p, repo, c := newProjector(t)
	ctx := context.Background()
	owner := uuid.New()

	name, _ := models.NewItemName("Silk Scarf")
	item, err := models.NewItem(owner, models.NewItemParams{
		ID: "scarf", Name: name, Category: models.CategoryAccessories,
		Price: decimal.NewFromInt(390), WearsPerYear: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, item); err != nil {
		t.Fatal(err)
	}

	msg := eventMessage(t, domainevents.ItemAddedEvent{
		EventID: uuid.New(), Version: 1, ItemID: "scarf", OwnerID: owner, OccurredAt: time.Now(),
	})
	if err := p.HandleItemAdded(ctx, msg); err != nil {
		t.Fatalf("HandleItemAdded: %v", err)
	}

	cached, err := c.Get(ctx, owner, "scarf")
	if err != nil {
		t.Fatalf("cache miss after warm: %v", err)
	}
	if cached.Name != "Silk Scarf" || !cached.Price.Equal(decimal.NewFromInt(390)) {
		t.Errorf("cached = %+v", cached)
	}
}

func TestHandleItemAdded_SkipsMissingAndMalformed(t *testing.T) {
	p, _, c := newProjector(t)
	ctx := context.Background()

	missing := eventMessage(t, domainevents.ItemAddedEvent{ItemID: "gone", OwnerID: uuid.New()})
	if err := p.HandleItemAdded(ctx, missing); err != nil {
		t.Errorf("missing item: %v", err)
	}
	if err := p.HandleItemAdded(ctx, message.NewMessage(watermill.NewUUID(), []byte("{"))); err != nil {
		t.Errorf("malformed payload: %v", err)
	}
	if len(c.entries) != 0 {
		t.Errorf("cache = %v, want empty", c.entries)
	}
}

func TestHandleItemDeleted(t *testing.T) {
	p, _, c := newProjector(t)
	ctx := context.Background()
	owner := uuid.New()
	c.entries[pkgcache.ItemKey(owner, "coat")] = &pkgcache.CachedItem{ID: "coat", OwnerID: owner}

	msg := eventMessage(t, domainevents.ItemDeletedEvent{ItemID: "coat", OwnerID: owner})
	if err := p.HandleItemDeleted(ctx, msg); err != nil {
		t.Fatalf("HandleItemDeleted: %v", err)
	}
	if _, err := c.Get(ctx, owner, "coat"); !errors.Is(err, redis.Nil) {
		t.Errorf("entry still cached, err = %v", err)
	}

	c.evictErr = errors.New("redis down")
	if err := p.HandleItemDeleted(ctx, msg); err == nil {
		t.Error("expected error so the bus retries")
	}
}

func TestHandleItemAdded_AfterDeleteDoesNotResurrect(t *testing.T) {
	ctx := context.Background()
	rc, err := pkgcache.NewRedisClient(ctx, "redis://"+miniredis.RunT(t).Addr())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = rc.Close() })
	itemCache := pkgcache.NewItemCache(rc)

	repo := memory.NewItemRepository()
	log := logger.NewWithWriter(&config.Config{LogLevel: "error"}, io.Discard)
	p := NewCacheProjector(repo, itemCache, log)
	owner := uuid.New()

	name, _ := models.NewItemName("Wool Coat")
	item, err := models.NewItem(owner, models.NewItemParams{
		ID: "coat", Name: name, Category: models.CategoryOuterwear,
		Price: decimal.NewFromInt(900), WearsPerYear: 40,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, item); err != nil {
		t.Fatal(err)
	}

	// The deleted event is handled first; the added event's handler still
	// finds the item, as it would had it loaded the row before the delete.
	deleted := eventMessage(t, domainevents.ItemDeletedEvent{ItemID: "coat", OwnerID: owner})
	if err := p.HandleItemDeleted(ctx, deleted); err != nil {
		t.Fatalf("HandleItemDeleted: %v", err)
	}
	added := eventMessage(t, domainevents.ItemAddedEvent{ItemID: "coat", OwnerID: owner})
	if err := p.HandleItemAdded(ctx, added); err != nil {
		t.Fatalf("HandleItemAdded: %v", err)
	}

	if _, err := itemCache.Get(ctx, owner, "coat"); !errors.Is(err, redis.Nil) {
		t.Errorf("deleted item came back into the cache, err = %v", err)
	}
}
