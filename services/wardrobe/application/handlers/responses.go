package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/pkg/auth"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// MessageResponse is returned by operations without a body of their own.
type MessageResponse struct {
	Message string `json:"message" example:"Item deleted"`
} // @name MessageResponse

// ItemResponse is the wire form of an item.
type ItemResponse struct {
	ID           string      `json:"id"                 example:"1718000000000"`
	Name         string      `json:"name"               example:"Classic Flap"`
	Brand        string      `json:"brand"              example:"Chanel"`
	Category     string      `json:"category"           example:"Bags"`
	Price        json.Number `json:"price"              swaggertype:"number" example:"8800"`
	PurchaseDate time.Time   `json:"purchaseDate"       example:"2024-01-15T10:30:00Z"`
	WearsPerYear int         `json:"wearsPerYear"       example:"50"`
	ImageURL     string      `json:"imageUrl,omitempty" example:"https://example.com/flap.jpg"`
	Material     string      `json:"material,omitempty" example:"Lambskin"`
} // @name Item

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name.String(),
		Brand:        item.Brand,
		Category:     item.Category.String(),
		Price:        number(item.Price),
		PurchaseDate: item.PurchaseDate,
		WearsPerYear: item.WearsPerYear,
		ImageURL:     item.ImageURL,
		Material:     item.Material,
	}
}

// number renders d as a JSON number rather than decimal's default string.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// rounded renders d as a JSON number with two decimals.
func rounded(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

// costPerWear renders an undefined cost per wear as null.
func costPerWear(c models.CostPerWear) *json.Number {
	if !c.Defined {
		return nil
	}
	n := rounded(c.Amount)
	return &n
}

// ownerID resolves the owner attached by the auth middleware and writes a
// 401 when there is none.
func ownerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := auth.OwnerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return uuid.Nil, false
	}
	return id, true
}
