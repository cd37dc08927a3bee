package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPortfolioStats_Lookups(t *testing.T) {
	stats := PortfolioStats{
		Categories: []CategoryTotal{
			{Category: CategoryBags, Total: decimal.NewFromInt(1000), Allocation: decimal.NewFromInt(80)},
			{Category: CategoryTops, Total: decimal.NewFromInt(250), Allocation: decimal.NewFromInt(20)},
		},
	}

	if got := stats.CategoryTotal(CategoryTops); !got.Equal(decimal.NewFromInt(250)) {
		t.Errorf("CategoryTotal(Tops) = %v, want 250", got)
	}
	if got := stats.AllocationPercentage(CategoryBags); !got.Equal(decimal.NewFromInt(80)) {
		t.Errorf("AllocationPercentage(Bags) = %v, want 80", got)
	}
	if got := stats.AllocationPercentage(CategoryShoes); !got.IsZero() {
		t.Errorf("AllocationPercentage(Shoes) = %v, want 0", got)
	}
	if got := stats.CategoryTotal(CategoryShoes); !got.IsZero() {
		t.Errorf("CategoryTotal(Shoes) = %v, want 0", got)
	}
}
