package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	pkgvalidator "github.com/wardrobecapital/wardrobe/pkg/validator"
	appsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/application/services"
)

// SimulationRequest is a prospective purchase.
type SimulationRequest struct {
	Name         string      `json:"name"         validate:"max=255"         example:"Classic Flap"`
	Brand        string      `json:"brand"        validate:"max=255"         example:"Chanel"`
	Category     string      `json:"category"     validate:"max=255"         example:"Bags"`
	Price        json.Number `json:"price"        validate:"required,money"  swaggertype:"number" example:"8800"`
	WearsPerYear *int        `json:"wearsPerYear" validate:"required,gte=0,lte=2147483647" example:"50"`
} // @name SimulationRequest

// ProjectionResponse is the outcome of a simulation. Cost per wear is null
// when no wears are projected.
type ProjectionResponse struct {
	Name                string       `json:"name"                example:"Classic Flap"`
	Brand               string       `json:"brand"               example:"Chanel"`
	Category            string       `json:"category"            example:"Bags"`
	Price               json.Number  `json:"price"               swaggertype:"number" example:"8800"`
	WearsPerYear        int          `json:"wearsPerYear"        example:"50"`
	RetentionPercentage json.Number  `json:"retentionPercentage" swaggertype:"number" example:"85"`
	RetentionSource     string       `json:"retentionSource"     example:"advisor" enums:"advisor,default"`
	Reasoning           string       `json:"reasoning"           example:"Classic flap bags hold value well."`
	ResaleValue         json.Number  `json:"resaleValue"         swaggertype:"number" example:"7480.00"`
	CostPerWear3Y       *json.Number `json:"costPerWear3y"       swaggertype:"number" example:"58.67"`
	CostPerWear5Y       *json.Number `json:"costPerWear5y"       swaggertype:"number" example:"35.20"`
} // @name Projection

// PostSimulationHandler handles POST /simulations requests.
type PostSimulationHandler struct {
	svc *appsvcs.Services
}

// NewPostSimulationHandler returns a PostSimulationHandler backed by the given services.
func NewPostSimulationHandler(svc *appsvcs.Services) *PostSimulationHandler {
	return &PostSimulationHandler{svc: svc}
}

// Execute projects resale value and cost per wear of a prospective purchase.
//
//	@Summary		Simulate purchase
//	@Description	Estimates five-year retention and cost per wear over three and five years. Falls back to 35% retention when no estimate is available.
//	@Tags			portfolio
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SimulationRequest	true	"Prospective purchase"
//	@Success		200		{object}	ProjectionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/simulations [post]
func (h *PostSimulationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, ok := ownerID(w, r); !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SimulationRequest](w, r)
	if !ok {
		return
	}
	price, err := decimal.NewFromString(req.Price.String())
	if err != nil {
		fieldError(w, "price", "Must be a non-negative amount")
		return
	}

	p := h.svc.Portfolio.Simulate(r.Context(), appsvcs.SimulateInput{
		Name:         req.Name,
		Brand:        req.Brand,
		Category:     req.Category,
		Price:        price,
		WearsPerYear: *req.WearsPerYear,
	})

	httpx.JSON(w, http.StatusOK, ProjectionResponse{
		Name:                p.Scenario.Name,
		Brand:               p.Scenario.Brand,
		Category:            p.Scenario.Category.String(),
		Price:               number(p.Scenario.Price),
		WearsPerYear:        p.Scenario.WearsPerYear,
		RetentionPercentage: number(p.RetentionPercentage),
		RetentionSource:     string(p.RetentionSource),
		Reasoning:           p.Reasoning,
		ResaleValue:         rounded(p.ResaleValue),
		CostPerWear3Y:       costPerWear(p.CostPerWear3Y),
		CostPerWear5Y:       costPerWear(p.CostPerWear5Y),
	})
}
