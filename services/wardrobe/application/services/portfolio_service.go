package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/gateways"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
	domainsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/domain/services"
)

const (
	// NoAdviceText is returned when the advisor answers with nothing.
	NoAdviceText = "No advice generated."
	// AdviceErrorText is returned when the advisor fails. The cause is
	// logged, never shown.
	AdviceErrorText = adviceErrorPrefix + "the advisor is unavailable right now. Please try again later."

	adviceErrorPrefix = "Error generating advice: "
)

// Portfolio is the owner's summary together with per-item cost per wear.
type Portfolio struct {
	Stats    models.PortfolioStats
	Holdings []models.Holding
}

// SimulateInput is a prospective purchase as entered by the user.
type SimulateInput struct {
	Name         string
	Brand        string
	Category     string
	Price        decimal.Decimal
	WearsPerYear int
}

// PortfolioService composes the item store, the engines and the advisory
// gateway. Gateway failures never surface as errors; each operation has a
// fallback.
type PortfolioService struct {
	items    *ItemService
	advisor  gateways.Advisor
	analyzer gateways.ImageAnalyzer
	timeout  time.Duration
	log      logger.Logger
	requests metric.Int64Counter
}

// NewPortfolioService returns a PortfolioService. analyzer may be nil, in
// which case image analysis always yields no draft. timeout bounds each
// gateway call; zero disables the bound.
func NewPortfolioService(items *ItemService, advisor gateways.Advisor, analyzer gateways.ImageAnalyzer, timeout time.Duration, log logger.Logger) *PortfolioService {
	requests, err := otel.Meter("github.com/wardrobecapital/wardrobe/advisor").Int64Counter(
		"wardrobe.advisor.requests",
		metric.WithDescription("Advisory gateway calls by operation and outcome"),
	)
	if err != nil {
		log.Warn("advisor request counter unavailable", "error", err)
	}
	return &PortfolioService{
		items:    items,
		advisor:  advisor,
		analyzer: analyzer,
		timeout:  timeout,
		log:      log,
		requests: requests,
	}
}

// Portfolio summarises the owner's current items.
func (s *PortfolioService) Portfolio(ctx context.Context, ownerID uuid.UUID) (*Portfolio, error) {
	items, err := s.items.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &Portfolio{
		Stats:    domainsvcs.Summarize(items),
		Holdings: domainsvcs.Holdings(items, domainsvcs.ShortHorizonYears),
	}, nil
}

// Simulate projects a prospective purchase. The retention estimate comes
// from the advisor; any failure falls back to the default retention.
func (s *PortfolioService) Simulate(ctx context.Context, in SimulateInput) models.Projection {
	scenario := models.Scenario{
		Name:         strings.TrimSpace(in.Name),
		Brand:        strings.TrimSpace(in.Brand),
		Category:     models.Category(in.Category).Canonical(),
		Price:        in.Price,
		WearsPerYear: in.WearsPerYear,
	}

	callCtx, cancel := s.gatewayContext(ctx)
	defer cancel()
	est, err := s.advisor.EstimateRetention(callCtx, scenario.Brand, scenario.Category, scenario.Price)

	projection := domainsvcs.Simulate(scenario, est, err)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		s.log.WarnContext(ctx, "retention estimate failed, using default", "error", err)
	} else if projection.RetentionSource == models.RetentionFromDefault {
		outcome = "invalid"
		s.log.WarnContext(ctx, "retention estimate out of range, using default", "estimate", est.Percentage.String())
	}
	s.record(ctx, "estimate_retention", outcome)
	return projection
}

// Advise asks the advisor about the owner's items. The result is always
// displayable text: advisor failures are reported inline.
func (s *PortfolioService) Advise(ctx context.Context, ownerID uuid.UUID, question string) (string, error) {
	items, err := s.items.List(ctx, ownerID)
	if err != nil {
		return "", err
	}

	callCtx, cancel := s.gatewayContext(ctx)
	defer cancel()
	advice, err := s.advisor.Advise(callCtx, items, question)
	if err != nil {
		s.record(ctx, "advise", "error")
		s.log.WarnContext(ctx, "advice generation failed", "owner_id", ownerID, "error", err)
		return AdviceErrorText, nil
	}
	s.record(ctx, "advise", "ok")
	if strings.TrimSpace(advice) == "" {
		return NoAdviceText, nil
	}
	return advice, nil
}

// AnalyzeImage returns a draft for the add-item form, or nil when the photo
// could not be analysed.
func (s *PortfolioService) AnalyzeImage(ctx context.Context, image []byte, mimeType string) *models.ItemDraft {
	if s.analyzer == nil {
		return nil
	}

	callCtx, cancel := s.gatewayContext(ctx)
	defer cancel()
	draft, err := s.analyzer.AnalyzeImage(callCtx, image, mimeType)
	if err != nil {
		s.record(ctx, "analyze_image", "error")
		s.log.WarnContext(ctx, "image analysis failed", "error", err)
		return nil
	}
	s.record(ctx, "analyze_image", "ok")
	return draft
}

func (s *PortfolioService) gatewayContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *PortfolioService) record(ctx context.Context, operation, outcome string) {
	if s.requests == nil {
		return
	}
	s.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

// AdviceFailed reports whether advice text is the inline failure message.
func AdviceFailed(advice string) bool {
	return strings.HasPrefix(advice, adviceErrorPrefix)
}

