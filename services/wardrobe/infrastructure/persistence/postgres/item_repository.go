package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wardrobecapital/wardrobe/pkg/database"
	"github.com/wardrobecapital/wardrobe/pkg/events"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain"
	domainevents "github.com/wardrobecapital/wardrobe/services/wardrobe/domain/events"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/repositories"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/infrastructure/persistence/postgres/db"
)

const (
	uniqueViolation = "23505"
	// integrityClass prefixes every integrity constraint violation code.
	integrityClass = "23"
	// dataExceptionClass prefixes codes for values the column cannot hold,
	// such as numeric_value_out_of_range.
	dataExceptionClass = "22"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository returns an ItemRepository backed by the given pool. When
// bus is non-nil, item added and deleted events are written to the outbox in
// the same transaction as the change.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: database, bus: bus}
}

// Save inserts a new item. Returns ErrItemAlreadyExists when the owner
// already has an item with the same id.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertItem(ctx, db.InsertItemParams{
			OwnerID:      item.OwnerID,
			ID:           item.ID.String(),
			Name:         item.Name.String(),
			Brand:        item.Brand,
			Category:     item.Category.String(),
			Price:        item.Price,
			PurchaseDate: item.PurchaseDate,
			WearsPerYear: int32(item.WearsPerYear), //nolint:gosec // bounded by models.MaxWearsPerYear
			ImageUrl:     item.ImageURL,
			Material:     item.Material,
			CreatedAt:    time.Now().UTC(),
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return domain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			evt := domainevents.ItemAddedEvent{
				EventID:    uuid.New(),
				Version:    domainevents.Version,
				ItemID:     item.ID.String(),
				OwnerID:    item.OwnerID,
				Name:       item.Name.String(),
				Category:   item.Category.String(),
				OccurredAt: time.Now().UTC(),
			}
			if err := r.publish(ctx, tx, domainevents.TopicItemAdded, evt.EventID, evt); err != nil {
				return fmt.Errorf("publish item added: %w", err)
			}
		}
		return nil
	})
	return storeError(err)
}

// GetByID retrieves one of the owner's items. Returns ErrItemNotFound if absent.
func (r *ItemRepository) GetByID(ctx context.Context, ownerID uuid.UUID, id models.ItemID) (*models.Item, error) {
	q := db.New(r.db.DB())
	row, err := q.GetItemByID(ctx, db.GetItemByIDParams{
		OwnerID: ownerID,
		ID:      id.String(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, storeError(fmt.Errorf("query item: %w", err))
	}
	return rowToItem(row), nil
}

// FindByOwnerID lists the owner's items in insertion order with the total count.
func (r *ItemRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.FindItemsByOwnerID(ctx, db.FindItemsByOwnerIDParams{
		OwnerID: ownerID,
		Limit:   clampInt32(opts.Limit),
		Offset:  clampInt32(opts.Offset),
	})
	if err != nil {
		return nil, 0, storeError(fmt.Errorf("query items: %w", err))
	}

	total, err := q.CountItemsByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, 0, storeError(fmt.Errorf("count items: %w", err))
	}

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, int(total), nil
}

// Delete removes one of the owner's items. Returns ErrItemNotFound when no
// row matched.
func (r *ItemRepository) Delete(ctx context.Context, ownerID uuid.UUID, id models.ItemID) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteItem(ctx, db.DeleteItemParams{
			OwnerID: ownerID,
			ID:      id.String(),
		})
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if n == 0 {
			return domain.ErrItemNotFound
		}

		if r.bus != nil {
			evt := domainevents.ItemDeletedEvent{
				EventID:    uuid.New(),
				Version:    domainevents.Version,
				ItemID:     id.String(),
				OwnerID:    ownerID,
				OccurredAt: time.Now().UTC(),
			}
			if err := r.publish(ctx, tx, domainevents.TopicItemDeleted, evt.EventID, evt); err != nil {
				return fmt.Errorf("publish item deleted: %w", err)
			}
		}
		return nil
	})
	return storeError(err)
}

// Exists reports whether the owner has an item with the given id.
func (r *ItemRepository) Exists(ctx context.Context, ownerID uuid.UUID, id models.ItemID) (bool, error) {
	q := db.New(r.db.DB())
	exists, err := q.ItemExists(ctx, db.ItemExistsParams{
		OwnerID: ownerID,
		ID:      id.String(),
	})
	if err != nil {
		return false, storeError(fmt.Errorf("check item exists: %w", err))
	}
	return exists, nil
}

func (r *ItemRepository) publish(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	msg, err := events.NewJSONMessage(eventID, domainevents.Version, event)
	if err != nil {
		return err
	}
	return r.bus.PublishTx(ctx, tx, topic, msg)
}

// storeError passes domain sentinels and context errors through, reports
// constraint violations and out-of-range values as invalid items and marks
// everything else as a store outage.
func storeError(err error) error {
	if err == nil ||
		errors.Is(err, domain.ErrItemNotFound) ||
		errors.Is(err, domain.ErrItemAlreadyExists) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		(strings.HasPrefix(pgErr.Code, integrityClass) || strings.HasPrefix(pgErr.Code, dataExceptionClass)) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidItem, pgErr.Message)
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}

// clampInt32 fits a pagination bound into the query's int4 parameter.
// Negative values become zero.
func clampInt32(n int) int32 {
	return int32(min(max(n, 0), math.MaxInt32)) //nolint:gosec
}

func rowToItem(row db.WardrobeItem) *models.Item {
	return &models.Item{
		ID:           models.ItemID(row.ID),
		OwnerID:      row.OwnerID,
		Name:         models.ItemName(row.Name),
		Brand:        row.Brand,
		Category:     models.Category(row.Category),
		Price:        row.Price,
		PurchaseDate: row.PurchaseDate.UTC(),
		WearsPerYear: int(row.WearsPerYear),
		ImageURL:     row.ImageUrl,
		Material:     row.Material,
	}
}
