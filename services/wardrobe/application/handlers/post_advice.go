package handlers

import (
	"net/http"

	"github.com/wardrobecapital/wardrobe/pkg/errhttp"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	"github.com/wardrobecapital/wardrobe/pkg/markdown"
	pkgvalidator "github.com/wardrobecapital/wardrobe/pkg/validator"
	appsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/application/services"
)

// AdviceRequest carries the user's question. An empty question asks for a
// general review.
type AdviceRequest struct {
	Question string `json:"question" validate:"max=2000" example:"Should I sell the loafers?"`
} // @name AdviceRequest

// AdviceResponse carries the advisor's markdown and its HTML rendering.
type AdviceResponse struct {
	Advice     string `json:"advice"     example:"**Sell** the loafers."`
	AdviceHTML string `json:"adviceHtml" example:"<p><strong>Sell</strong> the loafers.</p>"`
} // @name AdviceResponse

// PostAdviceHandler handles POST /advice requests.
type PostAdviceHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostAdviceHandler returns a PostAdviceHandler backed by the given services.
func NewPostAdviceHandler(svc *appsvcs.Services, log logger.Logger) *PostAdviceHandler {
	return &PostAdviceHandler{svc: svc, log: log}
}

// Execute asks the advisor about the caller's wardrobe. Advisor failures are
// reported inside the advice text with status 200.
//
//	@Summary		Investment advice
//	@Tags			portfolio
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AdviceRequest	true	"Question"
//	@Success		200		{object}	AdviceResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/advice [post]
func (h *PostAdviceHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AdviceRequest](w, r)
	if !ok {
		return
	}

	advice, err := h.svc.Portfolio.Advise(r.Context(), owner, req.Question)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	html, err := markdown.ToHTML(advice)
	if err != nil {
		h.log.WarnContext(r.Context(), "advice markdown rendering failed", "error", err)
	}
	httpx.JSON(w, http.StatusOK, AdviceResponse{Advice: advice, AdviceHTML: html})
}
