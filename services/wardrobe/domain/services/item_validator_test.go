package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

func TestValidateItemForCreation(t *testing.T) {
	valid := func() *models.Item {
		return &models.Item{
			ID:           "item-1",
			OwnerID:      uuid.New(),
			Name:         "Loafers",
			Brand:        "Gucci",
			Category:     models.CategoryShoes,
			Price:        decimal.NewFromInt(650),
			PurchaseDate: time.Now().UTC(),
			WearsPerYear: 60,
		}
	}

	t.Run("nil item returns error", func(t *testing.T) {
		if err := ValidateItemForCreation(nil); err == nil {
			t.Fatal("expected error for nil item")
		}
	})

	t.Run("valid item returns nil", func(t *testing.T) {
		if err := ValidateItemForCreation(valid()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero price and wears are allowed", func(t *testing.T) {
		item := valid()
		item.Price = decimal.Zero
		item.WearsPerYear = 0
		if err := ValidateItemForCreation(item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	invalid := []struct {
		name   string
		mutate func(*models.Item)
	}{
		{"empty id", func(i *models.Item) { i.ID = "" }},
		{"zero owner", func(i *models.Item) { i.OwnerID = uuid.Nil }},
		{"blank category", func(i *models.Item) { i.Category = "  " }},
		{"overlong brand", func(i *models.Item) { i.Brand = strings.Repeat("b", 256) }},
		{"negative price", func(i *models.Item) { i.Price = decimal.NewFromInt(-1) }},
		{"price beyond maximum", func(i *models.Item) { i.Price = decimal.New(1, 12) }},
		{"price with huge exponent", func(i *models.Item) { i.Price = decimal.New(1, 10000000) }},
		{"price below a cent", func(i *models.Item) { i.Price = decimal.RequireFromString("0.001") }},
		{"negative wears", func(i *models.Item) { i.WearsPerYear = -3 }},
		{"wears beyond storage range", func(i *models.Item) { i.WearsPerYear = models.MaxWearsPerYear + 1 }},
		{"uncleaned name", func(i *models.Item) { i.Name = "Silk  Scarf" }},
		{"zero purchase date", func(i *models.Item) { i.PurchaseDate = time.Time{} }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			item := valid()
			tt.mutate(item)
			if err := ValidateItemForCreation(item); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	t.Run("maximum price is accepted", func(t *testing.T) {
		item := valid()
		item.Price = decimal.RequireFromString("999999999999.99")
		if err := ValidateItemForCreation(item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("maximum wears is accepted", func(t *testing.T) {
		item := valid()
		item.WearsPerYear = models.MaxWearsPerYear
		if err := ValidateItemForCreation(item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown category is accepted", func(t *testing.T) {
		item := valid()
		item.Category = "Jewellery"
		if err := ValidateItemForCreation(item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
