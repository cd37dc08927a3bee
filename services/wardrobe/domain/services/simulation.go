package services

import (
	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

// Projection horizons, in years of ownership.
const (
	ShortHorizonYears = 3
	LongHorizonYears  = 5
)

// DefaultRetentionPercentage is used whenever no usable estimate is available.
var DefaultRetentionPercentage = decimal.NewFromInt(35)

// CostPerWearOver returns price / (wearsPerYear * years). The result is
// undefined when no wears are projected, i.e. wearsPerYear or years is not
// positive.
func CostPerWearOver(price decimal.Decimal, wearsPerYear, years int) models.CostPerWear {
	if wearsPerYear <= 0 || years <= 0 {
		return models.UndefinedCostPerWear()
	}
	wears := decimal.NewFromInt(int64(wearsPerYear) * int64(years))
	return models.DefinedCostPerWear(price.Div(wears))
}

// ResaleValue returns price * retention / 100.
func ResaleValue(price, retention decimal.Decimal) decimal.Decimal {
	return price.Mul(retention).Div(hundred)
}

// NormalizeRetention picks the retention to project with. An estimate is used
// only when err is nil and its percentage lies in [0, 100]; anything else
// falls back to DefaultRetentionPercentage.
func NormalizeRetention(est models.RetentionEstimate, err error) (decimal.Decimal, models.RetentionSource, string) {
	if err != nil || est.Percentage.IsNegative() || est.Percentage.GreaterThan(hundred) {
		return DefaultRetentionPercentage, models.RetentionFromDefault, ""
	}
	return est.Percentage, models.RetentionFromAdvisor, est.Reasoning
}

// Simulate projects scenario with the given retention estimate. estErr is the
// error returned by the estimator, if any; it selects the default retention
// and is otherwise ignored.
func Simulate(scenario models.Scenario, est models.RetentionEstimate, estErr error) models.Projection {
	retention, source, reasoning := NormalizeRetention(est, estErr)
	return models.Projection{
		Scenario:            scenario,
		RetentionPercentage: retention,
		RetentionSource:     source,
		Reasoning:           reasoning,
		ResaleValue:         ResaleValue(scenario.Price, retention),
		CostPerWear3Y:       CostPerWearOver(scenario.Price, scenario.WearsPerYear, ShortHorizonYears),
		CostPerWear5Y:       CostPerWearOver(scenario.Price, scenario.WearsPerYear, LongHorizonYears),
	}
}
