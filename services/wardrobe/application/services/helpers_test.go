package services

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/wardrobecapital/wardrobe/pkg/cache"
	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

func testLogger() logger.Logger {
	return logger.NewWithWriter(&config.Config{LogLevel: "error"}, io.Discard)
}

// fakeCache is an in-process ItemCache with the same tombstone rules as
// cache.ItemCache.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]*pkgcache.CachedItem
	evicted map[string]bool
	sets    chan struct{}
	err     error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string]*pkgcache.CachedItem),
		evicted: make(map[string]bool),
		sets:    make(chan struct{}, 16),
	}
}

func (c *fakeCache) Get(_ context.Context, ownerID uuid.UUID, itemID string) (*pkgcache.CachedItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	e, ok := c.entries[pkgcache.ItemKey(ownerID, itemID)]
	if !ok {
		return nil, redis.Nil
	}
	return e, nil
}

func (c *fakeCache) Set(_ context.Context, item *pkgcache.CachedItem) error {
	c.mu.Lock()
	key := pkgcache.ItemKey(item.OwnerID, item.ID)
	if !c.evicted[key] {
		c.entries[key] = item
	}
	c.mu.Unlock()
	c.sets <- struct{}{}
	return nil
}

func (c *fakeCache) Evict(_ context.Context, ownerID uuid.UUID, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := pkgcache.ItemKey(ownerID, itemID)
	delete(c.entries, key)
	c.evicted[key] = true
	return nil
}

func (c *fakeCache) Delete(_ context.Context, ownerID uuid.UUID, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := pkgcache.ItemKey(ownerID, itemID)
	delete(c.entries, key)
	delete(c.evicted, key)
	return nil
}

func (c *fakeCache) has(ownerID uuid.UUID, itemID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[pkgcache.ItemKey(ownerID, itemID)]
	return ok
}

// stubAdvisor returns canned answers and records what it was asked.
type stubAdvisor struct {
	advice      string
	adviceErr   error
	estimate    models.RetentionEstimate
	estimateErr error
	draft       *models.ItemDraft
	draftErr    error
	block       bool

	gotItems    []*models.Item
	gotQuestion string
}

func (s *stubAdvisor) Advise(ctx context.Context, items []*models.Item, question string) (string, error) {
	s.gotItems, s.gotQuestion = items, question
	return s.advice, s.adviceErr
}

func (s *stubAdvisor) EstimateRetention(ctx context.Context, _ string, _ models.Category, _ decimal.Decimal) (models.RetentionEstimate, error) {
	if s.block {
		<-ctx.Done()
		return models.RetentionEstimate{}, ctx.Err()
	}
	return s.estimate, s.estimateErr
}

func (s *stubAdvisor) AnalyzeImage(context.Context, []byte, string) (*models.ItemDraft, error) {
	return s.draft, s.draftErr
}
