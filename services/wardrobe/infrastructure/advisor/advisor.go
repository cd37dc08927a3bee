// Package advisor selects the advisory gateway implementation from config.
package advisor

import (
	"context"

	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/currency"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/gateways"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/infrastructure/advisor/gemini"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/infrastructure/advisor/offline"
)

// New returns the Gemini advisor when GEMINI_API_KEY is set and the offline
// advisor otherwise.
func New(ctx context.Context, cfg *config.Config, money *currency.Formatter, log logger.Logger) (gateways.Advisor, gateways.ImageAnalyzer, error) {
	if cfg.GeminiAPIKey == "" {
		log.Info("advisor selected", "backend", "offline")
		a := offline.New(money)
		return a, a, nil
	}

	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, err
	}
	a := gemini.New(client, gemini.Config{
		AdvisorModel:   cfg.AdvisorModel,
		RetentionModel: cfg.RetentionModel,
		VisionModel:    cfg.VisionModel,
		Currency:       money.Code(),
	})
	log.Info("advisor selected", "backend", "gemini", "model", cfg.AdvisorModel)
	return a, a, nil
}
