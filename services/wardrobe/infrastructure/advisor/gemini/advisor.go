// Package gemini implements the wardrobe advisory gateway on Google's Gemini
// models.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/gateways"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

const systemInstruction = `You are the Chief Investment Officer for "Wardrobe Capital".
Your role is to treat the user's wardrobe as a financial portfolio.
Analyze items based on "Cost Per Wear" (CPW), "Resale Value", and "Utility".
Use financial terminology (e.g., ROI, depreciation, asset class, diversification, liquidity).
Be concise, professional, but stylish.
Always format your response in Markdown.`

// generator is the subset of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config selects models and the display currency used in prompts.
type Config struct {
	AdvisorModel   string
	RetentionModel string
	VisionModel    string
	Currency       string
}

// Advisor talks to Gemini for advice, resale estimates and photo analysis.
type Advisor struct {
	models generator
	cfg    Config
}

var (
	_ gateways.Advisor       = (*Advisor)(nil)
	_ gateways.ImageAnalyzer = (*Advisor)(nil)
)

// NewClient creates a Gemini API client for apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return client, nil
}

// New returns an Advisor using client.
func New(client *genai.Client, cfg Config) *Advisor {
	return &Advisor{models: client.Models, cfg: cfg}
}

// Advise asks the advisor model to review items or answer question.
func (a *Advisor) Advise(ctx context.Context, items []*models.Item, question string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		ThinkingConfig:    &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](1024)},
		MaxOutputTokens:   2048,
	}

	resp, err := a.models.GenerateContent(ctx, a.cfg.AdvisorModel, genai.Text(advicePrompt(items, question, a.cfg.Currency)), config)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrGatewayFailure, err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// EstimateRetention asks for the share of price kept after five years.
func (a *Advisor) EstimateRetention(ctx context.Context, brand string, category models.Category, price decimal.Decimal) (models.RetentionEstimate, error) {
	prompt := fmt.Sprintf(
		"Estimate the resale value retention (%%) after 5 years for a %s %s purchased for %s %s. "+
			"Return a JSON object with 'retentionPercentage' (number) and 'reasoning' (string).",
		brandOrUnknown(brand), category, price.StringFixed(2), a.cfg.Currency,
	)

	resp, err := a.models.GenerateContent(ctx, a.cfg.RetentionModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return models.RetentionEstimate{}, fmt.Errorf("%w: %w", domain.ErrGatewayFailure, err)
	}
	return parseRetention(resp.Text())
}

// AnalyzeImage asks the vision model to describe the garment in image.
func (a *Advisor) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*models.ItemDraft, error) {
	prompt := fmt.Sprintf(`Analyze this clothing item. Return a JSON object with the following fields:
- name: a short descriptive name
- brand: brand name if visible, or "Unknown"
- category: one of %s
- price: estimated original retail price in %s as a number
- material: primary material
- color: primary color

Do not include markdown formatting. Just return the raw JSON string.`, quotedCategories(), a.cfg.Currency)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := a.models.GenerateContent(ctx, a.cfg.VisionModel, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGatewayFailure, err)
	}
	return parseDraft(resp.Text())
}

func advicePrompt(items []*models.Item, question, currency string) string {
	var b strings.Builder
	b.WriteString("Portfolio Data:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s %s (%s): Bought for %s %s, Worn %dx/year.\n",
			brandOrUnknown(it.Brand), it.Name, it.Category, it.Price.StringFixed(2), currency, it.WearsPerYear)
	}
	if len(items) == 0 {
		b.WriteString("(empty)\n")
	}

	if question = strings.TrimSpace(question); question == "" {
		question = "Give me a general review of my portfolio."
	}
	fmt.Fprintf(&b, "\nUser Query: %s\n\n", question)
	b.WriteString("Analyze the portfolio or answer the question with a focus on maximizing value and sustainability.\n")
	b.WriteString("If the portfolio is empty, give general advice on how to start building a wardrobe investment portfolio.\n")
	return b.String()
}

func brandOrUnknown(brand string) string {
	if strings.TrimSpace(brand) == "" {
		return "unbranded"
	}
	return brand
}

func quotedCategories() string {
	quoted := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		quoted[i] = fmt.Sprintf("%q", c.String())
	}
	return strings.Join(quoted, ", ")
}
