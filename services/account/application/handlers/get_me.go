package handlers

import (
	"errors"
	"net/http"

	"github.com/wardrobecapital/wardrobe/pkg/auth"
	"github.com/wardrobecapital/wardrobe/pkg/errhttp"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	appsvcs "github.com/wardrobecapital/wardrobe/services/account/application/services"
	"github.com/wardrobecapital/wardrobe/services/account/domain"
)

// GetMeHandler handles GET /auth/me requests.
type GetMeHandler struct {
	svc *appsvcs.Services
}

// NewGetMeHandler returns a GetMeHandler backed by the given services.
func NewGetMeHandler(svc *appsvcs.Services) *GetMeHandler {
	return &GetMeHandler{svc: svc}
}

// Execute returns the logged-in account.
//
//	@Summary	Current account
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	AccountResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/me [get]
func (h *GetMeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := auth.OwnerIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	account, err := h.svc.Account.Get(r.Context(), id)
	if errors.Is(err, domain.ErrAccountNotFound) {
		// session outlived its account
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toAccountResponse(account))
}
