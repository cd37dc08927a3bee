package events

import (
	"time"

	"github.com/google/uuid"
)

// Version is the payload schema version of the events below.
const Version = 1

// Topics published by the wardrobe item store.
const (
	TopicItemAdded   = "wardrobe.item.added"
	TopicItemDeleted = "wardrobe.item.deleted"
)

// ItemAddedEvent is published in the same transaction that persists an item.
type ItemAddedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     string    `json:"item_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published in the same transaction that removes an item.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     string    `json:"item_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
