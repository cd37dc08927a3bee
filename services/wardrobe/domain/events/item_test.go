package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/events"
)

func jsonFields(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	return raw
}

func TestItemAddedEvent_JSONFieldNames(t *testing.T) {
	raw := jsonFields(t, events.ItemAddedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     "coat-1",
		OwnerID:    uuid.New(),
		Name:       "Camel Coat",
		Category:   "Outerwear",
		OccurredAt: time.Now().UTC(),
	})
	for _, field := range []string{"event_id", "version", "item_id", "owner_id", "name", "category", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %v", field, raw)
		}
	}
	if raw["item_id"] != "coat-1" {
		t.Errorf("item_id = %v, want coat-1", raw["item_id"])
	}
}

func TestItemDeletedEvent_JSONFieldNames(t *testing.T) {
	raw := jsonFields(t, events.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     "coat-1",
		OwnerID:    uuid.New(),
		OccurredAt: time.Now().UTC(),
	})
	for _, field := range []string{"event_id", "version", "item_id", "owner_id", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %v", field, raw)
		}
	}
}

func TestTopics(t *testing.T) {
	if events.TopicItemAdded != "wardrobe.item.added" {
		t.Errorf("TopicItemAdded = %q", events.TopicItemAdded)
	}
	if events.TopicItemDeleted != "wardrobe.item.deleted" {
		t.Errorf("TopicItemDeleted = %q", events.TopicItemDeleted)
	}
	if events.TopicItemAdded == events.TopicItemDeleted {
		t.Error("topics must differ")
	}
}
