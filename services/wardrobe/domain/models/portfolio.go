package models

import "github.com/shopspring/decimal"

// CategoryTotal is the summed price of one category and its share of the
// portfolio value, in percent.
type CategoryTotal struct {
	Category   Category
	Total      decimal.Decimal
	Allocation decimal.Decimal
}

// PortfolioStats is derived from a snapshot of items on every read and never
// persisted.
type PortfolioStats struct {
	TotalValue     decimal.Decimal
	TotalItems     int
	TotalWears     int
	AvgCostPerWear decimal.Decimal
	TopCategory    Category // "" for an empty portfolio
	// Categories holds one entry per distinct category, in order of first
	// appearance in the snapshot.
	Categories       []CategoryTotal
	InvestmentPieces int
}

// CategoryTotal returns the summed price of c, zero when c is absent.
func (s PortfolioStats) CategoryTotal(c Category) decimal.Decimal {
	for _, ct := range s.Categories {
		if ct.Category == c {
			return ct.Total
		}
	}
	return decimal.Zero
}

// AllocationPercentage returns c's share of the total value in percent, zero
// when c is absent or the portfolio has no value.
func (s PortfolioStats) AllocationPercentage(c Category) decimal.Decimal {
	for _, ct := range s.Categories {
		if ct.Category == c {
			return ct.Allocation
		}
	}
	return decimal.Zero
}

// Holding is an item together with its cost per wear over a fixed horizon.
type Holding struct {
	Item        *Item
	CostPerWear CostPerWear
}
