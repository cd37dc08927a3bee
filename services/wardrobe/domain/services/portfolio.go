package services

import (
	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

// InvestmentPieceThreshold is the price above which an item counts as an
// investment piece.
var InvestmentPieceThreshold = decimal.NewFromInt(300)

var hundred = decimal.NewFromInt(100)

// Summarize computes portfolio statistics over a snapshot of items. It reads
// items only; the order of items affects nothing except the order of
// Categories and the tie-break of TopCategory.
//
// TopCategory is the category with the highest summed price. On a tie the
// category that appears first in items wins.
func Summarize(items []*models.Item) models.PortfolioStats {
	stats := models.PortfolioStats{
		TotalValue:     decimal.Zero,
		TotalItems:     len(items),
		AvgCostPerWear: decimal.Zero,
	}

	index := make(map[models.Category]int)
	for _, item := range items {
		stats.TotalValue = stats.TotalValue.Add(item.Price)
		stats.TotalWears += item.WearsPerYear
		if item.Price.GreaterThan(InvestmentPieceThreshold) {
			stats.InvestmentPieces++
		}

		i, ok := index[item.Category]
		if !ok {
			i = len(stats.Categories)
			index[item.Category] = i
			stats.Categories = append(stats.Categories, models.CategoryTotal{
				Category: item.Category,
				Total:    decimal.Zero,
			})
		}
		stats.Categories[i].Total = stats.Categories[i].Total.Add(item.Price)
	}

	if stats.TotalWears > 0 {
		stats.AvgCostPerWear = stats.TotalValue.Div(decimal.NewFromInt(int64(stats.TotalWears)))
	}

	best := decimal.Zero
	for i := range stats.Categories {
		ct := &stats.Categories[i]
		ct.Allocation = allocation(ct.Total, stats.TotalValue)
		if i == 0 || ct.Total.GreaterThan(best) {
			best = ct.Total
			stats.TopCategory = ct.Category
		}
	}

	return stats
}

func allocation(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}

// Holdings pairs every item with its cost per wear over horizonYears.
func Holdings(items []*models.Item, horizonYears int) []models.Holding {
	out := make([]models.Holding, len(items))
	for i, item := range items {
		out[i] = models.Holding{
			Item:        item,
			CostPerWear: CostPerWearOver(item.Price, item.WearsPerYear, horizonYears),
		}
	}
	return out
}
