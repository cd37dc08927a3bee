package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func validParams() NewItemParams {
	return NewItemParams{
		Name:         ItemName("Camel Coat"),
		Brand:        "Max Mara",
		Category:     CategoryOuterwear,
		Price:        decimal.NewFromInt(2100),
		WearsPerYear: 40,
	}
}

func TestNewItem(t *testing.T) {
	ownerID := uuid.New()

	t.Run("generates an id when none is given", func(t *testing.T) {
		item, err := NewItem(ownerID, validParams())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uuid.Parse(item.ID.String()); err != nil {
			t.Fatalf("expected generated UUID id, got %q", item.ID)
		}
	})

	t.Run("keeps a caller supplied id", func(t *testing.T) {
		p := validParams()
		p.ID = "1718000000000"
		item, err := NewItem(ownerID, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != "1718000000000" {
			t.Fatalf("expected caller id, got %q", item.ID)
		}
	})

	t.Run("rejects ids with whitespace", func(t *testing.T) {
		p := validParams()
		p.ID = "a b"
		if _, err := NewItem(ownerID, p); err == nil {
			t.Fatal("expected error for id with whitespace")
		}
	})

	t.Run("rejects overlong ids", func(t *testing.T) {
		p := validParams()
		p.ID = strings.Repeat("x", 65)
		if _, err := NewItem(ownerID, p); err == nil {
			t.Fatal("expected error for 65 character id")
		}
	})

	t.Run("sets OwnerID and fields", func(t *testing.T) {
		item, err := NewItem(ownerID, validParams())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.OwnerID != ownerID {
			t.Fatalf("expected OwnerID %v, got %v", ownerID, item.OwnerID)
		}
		if !item.Price.Equal(decimal.NewFromInt(2100)) {
			t.Fatalf("expected price 2100, got %v", item.Price)
		}
		if item.WearsPerYear != 40 || item.Brand != "Max Mara" {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("canonicalises known categories", func(t *testing.T) {
		p := validParams()
		p.Category = Category(" bags ")
		item, err := NewItem(ownerID, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Category != CategoryBags {
			t.Fatalf("expected %q, got %q", CategoryBags, item.Category)
		}
	})

	t.Run("defaults purchase date to now in UTC", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Microsecond)
		item, err := NewItem(ownerID, validParams())
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.PurchaseDate.Location() != time.UTC {
			t.Fatalf("expected UTC, got %v", item.PurchaseDate.Location())
		}
		if item.PurchaseDate.Before(before) || item.PurchaseDate.After(after) {
			t.Fatalf("PurchaseDate %v not between %v and %v", item.PurchaseDate, before, after)
		}
	})

	t.Run("truncates purchase date to microseconds", func(t *testing.T) {
		p := validParams()
		p.PurchaseDate = time.Date(2024, 3, 1, 10, 0, 0, 123456789, time.FixedZone("CET", 3600))
		item, err := NewItem(ownerID, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 3, 1, 9, 0, 0, 123456000, time.UTC)
		if !item.PurchaseDate.Equal(want) || item.PurchaseDate.Nanosecond() != 123456000 {
			t.Fatalf("expected %v, got %v", want, item.PurchaseDate)
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		item1, _ := NewItem(ownerID, validParams())
		item2, _ := NewItem(ownerID, validParams())
		if item1.ID == item2.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})
}
