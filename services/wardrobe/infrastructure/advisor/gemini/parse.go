package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

// decodeJSON strips an optional ```json fence and decodes the model output.
func decodeJSON(text string) (any, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrGatewayFailure)
	}

	var obj any
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrGatewayFailure, err)
	}
	return obj, nil
}

// lookup evaluates path against obj. jsonpath may answer with a one-element
// list or a bare value; the first element is kept in the former case.
func lookup(obj any, path string) (any, bool) {
	v, err := jsonpath.Get(path, obj)
	if err != nil {
		return nil, false
	}
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil, false
		}
		v = list[0]
	}
	return v, v != nil
}

func stringAt(obj any, path string) string {
	v, ok := lookup(obj, path)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// numberAt reads a JSON number, or a string holding one, optionally with a
// trailing percent sign.
func numberAt(obj any, path string) (decimal.Decimal, error) {
	v, ok := lookup(obj, path)
	if !ok {
		return decimal.Zero, fmt.Errorf("%s missing", path)
	}
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(strings.TrimSuffix(strings.TrimSpace(n), "%"))
	default:
		return decimal.Zero, fmt.Errorf("%s is %T, not a number", path, v)
	}
}

func parseRetention(text string) (models.RetentionEstimate, error) {
	obj, err := decodeJSON(text)
	if err != nil {
		return models.RetentionEstimate{}, err
	}
	pct, err := numberAt(obj, "$.retentionPercentage")
	if err != nil {
		return models.RetentionEstimate{}, fmt.Errorf("%w: %w", domain.ErrGatewayFailure, err)
	}
	return models.RetentionEstimate{
		Percentage: pct,
		Reasoning:  stringAt(obj, "$.reasoning"),
	}, nil
}

func parseDraft(text string) (*models.ItemDraft, error) {
	obj, err := decodeJSON(text)
	if err != nil {
		return nil, err
	}
	if _, ok := obj.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", domain.ErrGatewayFailure)
	}

	draft := &models.ItemDraft{
		Name:     stringAt(obj, "$.name"),
		Brand:    stringAt(obj, "$.brand"),
		Category: models.Category(stringAt(obj, "$.category")).Canonical(),
		Material: stringAt(obj, "$.material"),
		Color:    stringAt(obj, "$.color"),
	}
	if price, err := numberAt(obj, "$.price"); err == nil && !price.IsNegative() {
		draft.Price = price
	}
	if strings.EqualFold(draft.Brand, "unknown") {
		draft.Brand = ""
	}
	return draft, nil
}
