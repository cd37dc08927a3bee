package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// ItemCacheTTL is the time-to-live for cached items and for the
	// tombstones Evict leaves behind.
	ItemCacheTTL = 24 * time.Hour

	// evictedField marks a tombstone hash.
	evictedField = "evicted"
)

// setUnlessEvicted writes the item hash unless the key holds a tombstone.
// ARGV[1] is the TTL in seconds, the rest are field/value pairs.
var setUnlessEvicted = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], "` + evictedField + `") == 1 then
	return 0
end
redis.call("HSET", KEYS[1], unpack(ARGV, 2))
redis.call("EXPIRE", KEYS[1], ARGV[1])
return 1
`)

// CachedItem is the read model of a wardrobe item stored as a Redis hash.
type CachedItem struct {
	ID           string
	OwnerID      uuid.UUID
	Name         string
	Brand        string
	Category     string
	Price        decimal.Decimal
	PurchaseDate time.Time
	WearsPerYear int
	ImageURL     string
	Material     string
}

// ItemCache provides structured read/write operations for item cache entries.
// Keys are scoped by owner so one account can never read another's items.
// Key format: "wardrobe:item:{ownerID}:{itemID}"
//
// Items are immutable, so an entry only goes stale when its item is deleted.
// Evict replaces the entry with a tombstone that Set will not overwrite; a
// read or event that loaded the item before the delete cannot bring it back.
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item. Returns redis.Nil when the key does not exist,
// has expired or holds a tombstone.
func (c *ItemCache) Get(ctx context.Context, ownerID uuid.UUID, itemID string) (*CachedItem, error) {
	vals, err := c.client.Client().HGetAll(ctx, ItemKey(ownerID, itemID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if _, evicted := vals[evictedField]; evicted || len(vals) == 0 {
		return nil, redis.Nil
	}
	return itemFromHash(vals)
}

// Set writes a cached item with a 24-hour TTL. It does nothing when the item
// has been evicted.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	hash := itemToHash(item)
	args := make([]any, 0, 1+2*len(hash))
	args = append(args, int(ItemCacheTTL/time.Second))
	for field, value := range hash {
		args = append(args, field, value)
	}
	key := ItemKey(item.OwnerID, item.ID)
	if err := setUnlessEvicted.Run(ctx, c.client.Client(), []string{key}, args...).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Evict replaces a cached item with a tombstone that lives for ItemCacheTTL.
func (c *ItemCache) Evict(ctx context.Context, ownerID uuid.UUID, itemID string) error {
	key := ItemKey(ownerID, itemID)
	pipe := c.client.Client().TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, evictedField, "1")
	pipe.Expire(ctx, key, ItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache evict: %w", err)
	}
	return nil
}

// Delete removes a cached item or tombstone, so an item re-added under the
// same id can be cached again. Deleting a missing key is not an error.
func (c *ItemCache) Delete(ctx context.Context, ownerID uuid.UUID, itemID string) error {
	if err := c.client.Client().Del(ctx, ItemKey(ownerID, itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// ItemKey builds the Redis key for an item.
func ItemKey(ownerID uuid.UUID, itemID string) string {
	return Key("item", ownerID.String(), itemID)
}

func itemToHash(item *CachedItem) map[string]any {
	return map[string]any{
		"id":             item.ID,
		"owner_id":       item.OwnerID.String(),
		"name":           item.Name,
		"brand":          item.Brand,
		"category":       item.Category,
		"price":          item.Price.String(),
		"purchase_date":  item.PurchaseDate.UTC().Format(time.RFC3339Nano),
		"wears_per_year": strconv.Itoa(item.WearsPerYear),
		"image_url":      item.ImageURL,
		"material":       item.Material,
	}
}

func itemFromHash(vals map[string]string) (*CachedItem, error) {
	owner, err := uuid.Parse(vals["owner_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_id: %w", err)
	}
	price, err := decimal.NewFromString(vals["price"])
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	purchased, err := time.Parse(time.RFC3339Nano, vals["purchase_date"])
	if err != nil {
		return nil, fmt.Errorf("cache parse purchase_date: %w", err)
	}
	wears, err := strconv.Atoi(vals["wears_per_year"])
	if err != nil {
		return nil, fmt.Errorf("cache parse wears_per_year: %w", err)
	}

	return &CachedItem{
		ID:           vals["id"],
		OwnerID:      owner,
		Name:         vals["name"],
		Brand:        vals["brand"],
		Category:     vals["category"],
		Price:        price,
		PurchaseDate: purchased,
		WearsPerYear: wears,
		ImageURL:     vals["image_url"],
		Material:     vals["material"],
	}, nil
}
