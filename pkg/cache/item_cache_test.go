package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func sampleItem() *CachedItem {
	return &CachedItem{
		ID:           "bag-1",
		OwnerID:      uuid.MustParse("660e8400-e29b-41d4-a716-446655440000"),
		Name:         "Classic Flap",
		Brand:        "Chanel",
		Category:     "Bags",
		Price:        decimal.RequireFromString("8800.50"),
		PurchaseDate: time.Date(2023, 11, 4, 9, 0, 0, 0, time.UTC),
		WearsPerYear: 50,
		Material:     "Lambskin",
	}
}

func TestItemKey(t *testing.T) {
	owner := uuid.MustParse("660e8400-e29b-41d4-a716-446655440000")
	want := "wardrobe:item:660e8400-e29b-41d4-a716-446655440000:bag-1"
	if got := ItemKey(owner, "bag-1"); got != want {
		t.Fatalf("ItemKey = %q, want %q", got, want)
	}
	if ItemKey(uuid.New(), "bag-1") == want {
		t.Fatal("keys must be scoped by owner")
	}
}

func TestItemFromHash_RejectsCorruptEntries(t *testing.T) {
	base := func() map[string]string {
		vals := make(map[string]string)
		for k, v := range itemToHash(sampleItem()) {
			vals[k] = v.(string)
		}
		return vals
	}

	if _, err := itemFromHash(base()); err != nil {
		t.Fatalf("valid hash rejected: %v", err)
	}

	for _, field := range []string{"owner_id", "price", "purchase_date", "wears_per_year"} {
		t.Run(field, func(t *testing.T) {
			vals := base()
			vals[field] = "garbage"
			if _, err := itemFromHash(vals); err == nil {
				t.Fatalf("expected error for corrupt %s", field)
			}
		})
	}
}

func TestItemCache_SetGetDelete(t *testing.T) {
	rc := newTestClient(t)

	ctx := context.Background()
	c := NewItemCache(rc)
	item := sampleItem()
	item.OwnerID = uuid.New()

	if _, err := c.Get(ctx, item.OwnerID, item.ID); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil before Set, got %v", err)
	}
	if err := c.Set(ctx, item); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, item.OwnerID, item.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Price.Equal(item.Price) || !got.PurchaseDate.Equal(item.PurchaseDate) || got.Name != item.Name {
		t.Errorf("got %+v, want %+v", got, item)
	}

	if err := c.Delete(ctx, item.OwnerID, item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, item.OwnerID, item.ID); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil after Delete, got %v", err)
	}
}

func TestItemCache_EvictLeavesTombstone(t *testing.T) {
	rc := newTestClient(t)
	ctx := context.Background()
	c := NewItemCache(rc)
	item := sampleItem()
	item.OwnerID = uuid.New()

	if err := c.Set(ctx, item); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Evict(ctx, item.OwnerID, item.ID); err != nil {
		t.Fatalf("Evict: %v", err)
	}
	if _, err := c.Get(ctx, item.OwnerID, item.ID); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil after Evict, got %v", err)
	}

	// A warm that loaded the item before the delete lands afterwards.
	if err := c.Set(ctx, item); err != nil {
		t.Fatalf("late Set: %v", err)
	}
	if _, err := c.Get(ctx, item.OwnerID, item.ID); !errors.Is(err, redis.Nil) {
		t.Fatalf("late Set resurrected an evicted item, err = %v", err)
	}
	ttl, err := rc.Client().TTL(ctx, ItemKey(item.OwnerID, item.ID)).Result()
	if err != nil || ttl <= 0 || ttl > ItemCacheTTL {
		t.Errorf("tombstone ttl = %s, err = %v", ttl, err)
	}

	// Re-adding under the same id clears the tombstone first.
	if err := c.Delete(ctx, item.OwnerID, item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Set(ctx, item); err != nil {
		t.Fatalf("Set after Delete: %v", err)
	}
	if _, err := c.Get(ctx, item.OwnerID, item.ID); err != nil {
		t.Fatalf("Get after re-add: %v", err)
	}
}
