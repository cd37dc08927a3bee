// Package services contains stateless domain services for the wardrobe bounded context.
// Domain services enforce business rules and compute portfolio figures purely on
// domain types; they depend only on the domain layer, decimal math and the
// shared amount bounds in pkg/currency.
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wardrobecapital/wardrobe/pkg/currency"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

const maxLabelLength = 255

// ValidateItemForCreation performs cross-field validation on a fully-constructed
// Item aggregate before it is persisted.
func ValidateItemForCreation(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if item.ID == "" {
		return fmt.Errorf("id must be set")
	}

	if err := item.Name.Validate(); err != nil {
		return err
	}

	if item.OwnerID == uuid.Nil {
		return fmt.Errorf("owner_id must be set")
	}

	if strings.TrimSpace(item.Category.String()) == "" {
		return fmt.Errorf("category must be set")
	}

	if len(item.Category) > maxLabelLength || len(item.Brand) > maxLabelLength || len(item.Material) > maxLabelLength {
		return fmt.Errorf("labels must not exceed %d characters", maxLabelLength)
	}

	if err := currency.CheckAmount(item.Price); err != nil {
		return fmt.Errorf("price: %w", err)
	}

	if item.WearsPerYear < 0 {
		return fmt.Errorf("wears per year must not be negative")
	}

	if item.WearsPerYear > models.MaxWearsPerYear {
		return fmt.Errorf("wears per year must not exceed %d", models.MaxWearsPerYear)
	}

	if item.PurchaseDate.IsZero() {
		return fmt.Errorf("purchase date must be set")
	}

	return nil
}
