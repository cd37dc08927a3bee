package offline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/pkg/currency"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

func newAdvisor(t *testing.T) *Advisor {
	t.Helper()
	f, err := currency.NewFormatter("USD")
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}
	return New(f)
}

func TestEstimateRetention(t *testing.T) {
	a := newAdvisor(t)
	tests := []struct {
		brand    string
		category models.Category
		want     int64
	}{
		{"Hermès", models.CategoryBags, 70},
		{"  CHANEL ", models.CategoryShoes, 70},
		{"Prada", models.CategoryTops, 45},
		{"Zara", models.CategoryBags, 40},
		{"", "shoes", 15},
		{"Uniqlo", "Jewellery", 35},
	}
	for _, tt := range tests {
		t.Run(tt.brand+"/"+tt.category.String(), func(t *testing.T) {
			est, err := a.EstimateRetention(context.Background(), tt.brand, tt.category, decimal.NewFromInt(100))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !est.Percentage.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("Percentage = %v, want %d", est.Percentage, tt.want)
			}
			if est.Reasoning == "" {
				t.Error("Reasoning must not be empty")
			}
		})
	}
}

func TestAnalyzeImage_Unsupported(t *testing.T) {
	_, err := newAdvisor(t).AnalyzeImage(context.Background(), []byte{1}, "image/png")
	if !errors.Is(err, domain.ErrGatewayFailure) {
		t.Fatalf("expected ErrGatewayFailure, got %v", err)
	}
}

func TestAdvise_EmptyPortfolio(t *testing.T) {
	out, err := newAdvisor(t).Advise(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "portfolio is empty") {
		t.Errorf("unexpected advice:\n%s", out)
	}
}

func TestAdvise_Portfolio(t *testing.T) {
	items := []*models.Item{
		{Name: "Classic Flap", Category: models.CategoryBags, Price: decimal.NewFromInt(1000), WearsPerYear: 50},
		{Name: "Loafers", Category: models.CategoryShoes, Price: decimal.NewFromInt(500), WearsPerYear: 10},
		{Name: "Gala Gown", Category: models.CategoryTops, Price: decimal.NewFromInt(200), WearsPerYear: 0},
	}
	out, err := newAdvisor(t).Advise(context.Background(), items, "What should I sell?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"> What should I sell?",
		"$1,700.00 across 3 pieces",
		"**Largest allocation:** Bags",
		"**Best performer:** Classic Flap",
		"**Underperformer:** Loafers",
		"**Idle asset:** Gala Gown",
		"Concentration risk",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("advice missing %q:\n%s", want, out)
		}
	}
}
