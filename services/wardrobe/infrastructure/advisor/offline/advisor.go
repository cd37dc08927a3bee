// Package offline is a rule-based advisory gateway used when no Gemini API key
// is configured. Its output is deterministic.
package offline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/pkg/currency"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/gateways"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/services"
)

// luxuryBrands hold value on the resale market regardless of category.
var luxuryBrands = map[string]bool{
	"hermès": true, "hermes": true, "chanel": true, "rolex": true,
	"louis vuitton": true, "dior": true, "goyard": true, "cartier": true,
}

// premiumBrands keep a moderate share of their price.
var premiumBrands = map[string]bool{
	"gucci": true, "prada": true, "celine": true, "bottega veneta": true,
	"saint laurent": true, "loewe": true, "burberry": true, "moncler": true,
	"the row": true, "max mara": true,
}

var categoryRetention = map[models.Category]int64{
	models.CategoryBags:        40,
	models.CategoryAccessories: 30,
	models.CategoryOuterwear:   25,
	models.CategoryShoes:       15,
	models.CategoryBottoms:     10,
	models.CategoryTops:        10,
}

// Advisor answers from fixed rules over the portfolio figures.
type Advisor struct {
	money *currency.Formatter
}

var (
	_ gateways.Advisor       = (*Advisor)(nil)
	_ gateways.ImageAnalyzer = (*Advisor)(nil)
)

func New(money *currency.Formatter) *Advisor {
	return &Advisor{money: money}
}

// EstimateRetention grades brand first and falls back to the category.
func (a *Advisor) EstimateRetention(_ context.Context, brand string, category models.Category, _ decimal.Decimal) (models.RetentionEstimate, error) {
	b := strings.ToLower(strings.TrimSpace(brand))
	switch {
	case luxuryBrands[b]:
		return models.RetentionEstimate{
			Percentage: decimal.NewFromInt(70),
			Reasoning:  fmt.Sprintf("%s is a heritage luxury house with strong secondary-market demand.", brand),
		}, nil
	case premiumBrands[b]:
		return models.RetentionEstimate{
			Percentage: decimal.NewFromInt(45),
			Reasoning:  fmt.Sprintf("%s is a premium label; resale holds moderately well.", brand),
		}, nil
	}

	pct := services.DefaultRetentionPercentage
	if p, ok := categoryRetention[category.Canonical()]; ok {
		pct = decimal.NewFromInt(p)
	}
	return models.RetentionEstimate{
		Percentage: pct,
		Reasoning:  fmt.Sprintf("Typical resale retention for %s without a collectible label.", category),
	}, nil
}

// AnalyzeImage is not supported offline.
func (a *Advisor) AnalyzeImage(context.Context, []byte, string) (*models.ItemDraft, error) {
	return nil, fmt.Errorf("%w: image analysis needs a vision model", domain.ErrGatewayFailure)
}

// Advise writes a short markdown review of items.
func (a *Advisor) Advise(_ context.Context, items []*models.Item, question string) (string, error) {
	var b strings.Builder
	b.WriteString("## Portfolio Review\n\n")

	if q := strings.TrimSpace(question); q != "" {
		fmt.Fprintf(&b, "> %s\n\n", q)
	}

	if len(items) == 0 {
		b.WriteString("Your portfolio is empty. Start with versatile core assets: a quality coat, ")
		b.WriteString("leather shoes and a structured bag you will wear at least weekly. ")
		b.WriteString("High wear frequency drives cost per wear down faster than any discount.\n")
		return b.String(), nil
	}

	stats := services.Summarize(items)
	fmt.Fprintf(&b, "- **Total value:** %s across %d pieces\n", a.money.Format(stats.TotalValue), stats.TotalItems)
	fmt.Fprintf(&b, "- **Average cost per wear:** %s\n", a.money.Format(stats.AvgCostPerWear))
	fmt.Fprintf(&b, "- **Largest allocation:** %s (%s%%)\n", stats.TopCategory,
		stats.AllocationPercentage(stats.TopCategory).StringFixed(1))
	fmt.Fprintf(&b, "- **Investment pieces:** %d\n\n", stats.InvestmentPieces)

	holdings := services.Holdings(items, services.ShortHorizonYears)
	var idle []models.Holding
	var worn []models.Holding
	for _, h := range holdings {
		if h.CostPerWear.Defined {
			worn = append(worn, h)
		} else {
			idle = append(idle, h)
		}
	}
	sort.SliceStable(worn, func(i, j int) bool {
		return worn[i].CostPerWear.Amount.GreaterThan(worn[j].CostPerWear.Amount)
	})

	b.WriteString("### Recommendations\n\n")
	if len(worn) > 0 {
		best := worn[len(worn)-1]
		fmt.Fprintf(&b, "- **Best performer:** %s at %s per wear over %d years.\n",
			best.Item.Name, a.money.Format(best.CostPerWear.Amount), services.ShortHorizonYears)
		if len(worn) > 1 {
			worst := worn[0]
			fmt.Fprintf(&b, "- **Underperformer:** %s at %s per wear. Wear it more or consider selling while it holds value.\n",
				worst.Item.Name, a.money.Format(worst.CostPerWear.Amount))
		}
	}
	for _, h := range idle {
		fmt.Fprintf(&b, "- **Idle asset:** %s has no planned wears. It is pure depreciation until it is worn or sold.\n", h.Item.Name)
	}
	if stats.TotalItems > 1 && stats.AllocationPercentage(stats.TopCategory).GreaterThan(decimal.NewFromInt(50)) {
		fmt.Fprintf(&b, "- **Concentration risk:** more than half the value sits in %s. Diversify your next purchases.\n", stats.TopCategory)
	}
	return b.String(), nil
}
