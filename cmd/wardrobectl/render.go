package main

import (
	"fmt"
	"strings"

	"github.com/wardrobecapital/wardrobe/pkg/currency"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
	domainsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/domain/services"
)

func costPerWear(c models.CostPerWear, money *currency.Formatter) string {
	if !c.Defined {
		return "n/a"
	}
	return money.Format(c.Amount)
}

func itemsMarkdown(holdings []models.Holding, money *currency.Formatter) string {
	if len(holdings) == 0 {
		return "# Items\n\nNo items yet.\n"
	}

	var b strings.Builder
	b.WriteString("# Items\n\n")
	fmt.Fprintf(&b, "| ID | Name | Brand | Category | Price | Wears/yr | CPW (%dy) |\n", domainsvcs.ShortHorizonYears)
	b.WriteString("|---|---|---|---|---:|---:|---:|\n")
	for _, h := range holdings {
		it := h.Item
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %d | %s |\n",
			it.ID, cell(it.Name.String()), cell(it.Brand), cell(it.Category.String()),
			money.Format(it.Price), it.WearsPerYear, costPerWear(h.CostPerWear, money))
	}
	return b.String()
}

func statsMarkdown(s models.PortfolioStats, money *currency.Formatter) string {
	var b strings.Builder
	b.WriteString("# Portfolio\n\n")
	fmt.Fprintf(&b, "- **Total value:** %s\n", money.Format(s.TotalValue))
	fmt.Fprintf(&b, "- **Items:** %d\n", s.TotalItems)
	fmt.Fprintf(&b, "- **Wears per year:** %d\n", s.TotalWears)
	fmt.Fprintf(&b, "- **Average cost per wear:** %s\n", money.Format(s.AvgCostPerWear))
	fmt.Fprintf(&b, "- **Investment pieces:** %d\n", s.InvestmentPieces)
	if s.TopCategory != "" {
		fmt.Fprintf(&b, "- **Top category:** %s\n", s.TopCategory)
	}

	if len(s.Categories) > 0 {
		b.WriteString("\n## Allocation\n\n| Category | Value | Share |\n|---|---:|---:|\n")
		for _, ct := range s.Categories {
			fmt.Fprintf(&b, "| %s | %s | %s%% |\n", cell(ct.Category.String()), money.Format(ct.Total), ct.Allocation.StringFixed(1))
		}
	}
	return b.String()
}

func projectionMarkdown(p models.Projection, money *currency.Formatter) string {
	var b strings.Builder
	title := p.Scenario.Name
	if title == "" {
		title = "Purchase simulation"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "- **Price:** %s\n", money.Format(p.Scenario.Price))
	fmt.Fprintf(&b, "- **Retention after %d years:** %s%%", domainsvcs.LongHorizonYears, p.RetentionPercentage.String())
	if p.RetentionSource == models.RetentionFromDefault {
		b.WriteString(" (default estimate)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- **Resale value:** %s\n", money.Format(p.ResaleValue))
	fmt.Fprintf(&b, "- **Cost per wear, %d years:** %s\n", domainsvcs.ShortHorizonYears, costPerWear(p.CostPerWear3Y, money))
	fmt.Fprintf(&b, "- **Cost per wear, %d years:** %s\n", domainsvcs.LongHorizonYears, costPerWear(p.CostPerWear5Y, money))
	if p.Reasoning != "" {
		fmt.Fprintf(&b, "\n> %s\n", p.Reasoning)
	}
	return b.String()
}

// cell escapes pipes so user text cannot break a table row.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
