package services

import (
	"github.com/wardrobecapital/wardrobe/pkg/app"
	"github.com/wardrobecapital/wardrobe/pkg/cache"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/repositories"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/infrastructure/persistence/memory"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Item      *ItemService
	Portfolio *PortfolioService
}

// New wires the wardrobe services with infrastructure from the Application
// container. Without a database the in-memory store is used.
func New(a *app.Application) *Services {
	var repo repositories.ItemRepository
	if a.Db != nil {
		repo = postgres.NewItemRepository(a.Db, a.EventBus)
	} else {
		a.Logger.Warn("no database configured, items are kept in memory")
		repo = memory.NewItemRepository()
	}

	var itemCache ItemCache
	if a.Redis != nil {
		itemCache = cache.NewItemCache(a.Redis)
	}

	items := NewItemService(repo, itemCache, a.Logger)
	return &Services{
		Item:      items,
		Portfolio: NewPortfolioService(items, a.Advisor, a.ImageAnalyzer, a.Config.AdvisorTimeout, a.Logger),
	}
}
