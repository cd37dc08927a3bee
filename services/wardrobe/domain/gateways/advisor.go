// Package gateways declares the outbound ports of the wardrobe context.
// Implementations live under infrastructure/advisor.
package gateways

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

// Advisor produces narrative advice and resale estimates.
type Advisor interface {
	// Advise returns markdown advice for the given holdings. An empty
	// question asks for a general portfolio review.
	Advise(ctx context.Context, items []*models.Item, question string) (string, error)

	// EstimateRetention returns the expected resale value after five
	// years as a percentage of price. Callers range-check the result.
	EstimateRetention(ctx context.Context, brand string, category models.Category, price decimal.Decimal) (models.RetentionEstimate, error)
}

// ImageAnalyzer extracts an item draft from a product photo.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*models.ItemDraft, error)
}
