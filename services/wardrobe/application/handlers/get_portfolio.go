package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/wardrobecapital/wardrobe/pkg/currency"
	"github.com/wardrobecapital/wardrobe/pkg/errhttp"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	appsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/application/services"
)

// CategoryResponse is one slice of the allocation chart.
type CategoryResponse struct {
	Category   string      `json:"category"   example:"Bags"`
	Total      json.Number `json:"total"      swaggertype:"number" example:"1000"`
	Allocation json.Number `json:"allocation" swaggertype:"number" example:"66.7"`
} // @name CategoryAllocation

// HoldingResponse is an item with its cost per wear over three years.
type HoldingResponse struct {
	Item        ItemResponse `json:"item"`
	CostPerWear *json.Number `json:"costPerWear" swaggertype:"number" example:"6.67"`
} // @name Holding

// PortfolioDisplay holds pre-formatted money strings.
type PortfolioDisplay struct {
	Currency       string `json:"currency"       example:"USD"`
	TotalValue     string `json:"totalValue"     example:"$1,500.00"`
	AvgCostPerWear string `json:"avgCostPerWear" example:"$20.00"`
} // @name PortfolioDisplay

// PortfolioResponse is the dashboard summary.
type PortfolioResponse struct {
	TotalValue       json.Number        `json:"totalValue"       swaggertype:"number" example:"1500"`
	TotalItems       int                `json:"totalItems"       example:"3"`
	TotalWears       int                `json:"totalWears"       example:"75"`
	AvgCostPerWear   json.Number        `json:"avgCostPerWear"   swaggertype:"number" example:"20.00"`
	TopCategory      string             `json:"topCategory"      example:"Bags"`
	InvestmentPieces int                `json:"investmentPieces" example:"2"`
	Categories       []CategoryResponse `json:"categories"`
	Holdings         []HoldingResponse  `json:"holdings"`
	Display          PortfolioDisplay   `json:"display"`
} // @name Portfolio

// GetPortfolioHandler handles GET /portfolio requests.
type GetPortfolioHandler struct {
	svc   *appsvcs.Services
	money *currency.Formatter
}

// NewGetPortfolioHandler returns a GetPortfolioHandler backed by the given
// services. money formats the display strings.
func NewGetPortfolioHandler(svc *appsvcs.Services, money *currency.Formatter) *GetPortfolioHandler {
	return &GetPortfolioHandler{svc: svc, money: money}
}

// Execute summarises the caller's wardrobe.
//
//	@Summary		Portfolio summary
//	@Description	Total value, wears, average cost per wear, category allocation and per-item cost per wear
//	@Tags			portfolio
//	@Produce		json
//	@Success		200	{object}	PortfolioResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/portfolio [get]
func (h *GetPortfolioHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Portfolio.Portfolio(r.Context(), owner)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	s := p.Stats
	resp := PortfolioResponse{
		TotalValue:       number(s.TotalValue),
		TotalItems:       s.TotalItems,
		TotalWears:       s.TotalWears,
		AvgCostPerWear:   rounded(s.AvgCostPerWear),
		TopCategory:      s.TopCategory.String(),
		InvestmentPieces: s.InvestmentPieces,
		Categories:       make([]CategoryResponse, len(s.Categories)),
		Holdings:         make([]HoldingResponse, len(p.Holdings)),
		Display: PortfolioDisplay{
			Currency:       h.money.Code(),
			TotalValue:     h.money.Format(s.TotalValue),
			AvgCostPerWear: h.money.Format(s.AvgCostPerWear),
		},
	}
	for i, ct := range s.Categories {
		resp.Categories[i] = CategoryResponse{
			Category:   ct.Category.String(),
			Total:      number(ct.Total),
			Allocation: json.Number(ct.Allocation.StringFixed(1)),
		}
	}
	for i, hd := range p.Holdings {
		resp.Holdings[i] = HoldingResponse{
			Item:        toItemResponse(hd.Item),
			CostPerWear: costPerWear(hd.CostPerWear),
		}
	}
	httpx.JSON(w, http.StatusOK, resp)
}
