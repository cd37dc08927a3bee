package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/pkg/errhttp"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	pkgvalidator "github.com/wardrobecapital/wardrobe/pkg/validator"
	appsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/application/services"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	ID           string      `json:"id"           validate:"omitempty,max=64"       example:"1718000000000"`
	Name         string      `json:"name"         validate:"required,max=255"       example:"Classic Flap"`
	Brand        string      `json:"brand"        validate:"max=255"                example:"Chanel"`
	Category     string      `json:"category"     validate:"required,max=255"       example:"Bags"`
	Price        json.Number `json:"price"        validate:"required,money"         swaggertype:"number" example:"8800"`
	PurchaseDate string      `json:"purchaseDate"                                   example:"2024-01-15"`
	WearsPerYear *int        `json:"wearsPerYear" validate:"required,gte=0,lte=2147483647" example:"50"`
	ImageURL     string      `json:"imageUrl"     validate:"omitempty,url,max=2048" example:"https://example.com/flap.jpg"`
	Material     string      `json:"material"     validate:"max=255"                example:"Lambskin"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute records a purchase.
//
//	@Summary		Create item
//	@Description	Records a purchase. The id may be chosen by the client; otherwise one is generated.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	// "money" has already accepted the value.
	price, err := decimal.NewFromString(req.Price.String())
	if err != nil {
		fieldError(w, "price", "Must be a non-negative amount")
		return
	}
	purchased, ok := parsePurchaseDate(req.PurchaseDate)
	if !ok {
		fieldError(w, "purchaseDate", "Must be an ISO 8601 date or timestamp")
		return
	}

	item, err := h.svc.Item.Add(r.Context(), owner, appsvcs.AddItemInput{
		ID:           req.ID,
		Name:         req.Name,
		Brand:        req.Brand,
		Category:     req.Category,
		Price:        price,
		PurchaseDate: purchased,
		WearsPerYear: *req.WearsPerYear,
		ImageURL:     req.ImageURL,
		Material:     req.Material,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

// parsePurchaseDate accepts RFC 3339 timestamps and plain dates. An empty
// value yields the zero time, which the domain replaces with now.
func parsePurchaseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fieldError(w http.ResponseWriter, field, msg string) {
	httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "Validation failed",
		"fields": map[string]string{field: msg},
	})
}
