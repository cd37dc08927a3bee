package models

import "github.com/shopspring/decimal"

// CostPerWear is a price divided by projected wears. It is undefined when no
// wears are projected; Amount is zero in that case and must not be displayed.
type CostPerWear struct {
	Amount  decimal.Decimal
	Defined bool
}

// DefinedCostPerWear returns a defined CostPerWear of amount.
func DefinedCostPerWear(amount decimal.Decimal) CostPerWear {
	return CostPerWear{Amount: amount, Defined: true}
}

// UndefinedCostPerWear returns the marker for "no projected wears".
func UndefinedCostPerWear() CostPerWear {
	return CostPerWear{}
}

// Scenario is a prospective purchase. It lives for one simulation request.
type Scenario struct {
	Name         string
	Brand        string
	Category     Category
	Price        decimal.Decimal
	WearsPerYear int
}

// RetentionSource tells where a projection's retention percentage came from.
type RetentionSource string

const (
	RetentionFromAdvisor RetentionSource = "advisor"
	RetentionFromDefault RetentionSource = "default"
)

// RetentionEstimate is the advisor's estimate of the share of the price an
// item keeps on the resale market after five years.
type RetentionEstimate struct {
	Percentage decimal.Decimal
	Reasoning  string
}

// Projection is the outcome of a simulation.
type Projection struct {
	Scenario            Scenario
	RetentionPercentage decimal.Decimal
	RetentionSource     RetentionSource
	Reasoning           string
	ResaleValue         decimal.Decimal
	CostPerWear3Y       CostPerWear
	CostPerWear5Y       CostPerWear
}

// ItemDraft is a pre-filled add-item form derived from a photo.
type ItemDraft struct {
	Name     string
	Brand    string
	Category Category
	Price    decimal.Decimal
	Material string
	Color    string
}
