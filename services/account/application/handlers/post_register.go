package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/wardrobecapital/wardrobe/pkg/auth"
	"github.com/wardrobecapital/wardrobe/pkg/errhttp"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
	pkgvalidator "github.com/wardrobecapital/wardrobe/pkg/validator"
	appsvcs "github.com/wardrobecapital/wardrobe/services/account/application/services"
)

// PostRegisterHandler handles POST /auth/register requests.
type PostRegisterHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

// NewPostRegisterHandler returns a PostRegisterHandler that starts sessions in store.
func NewPostRegisterHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *PostRegisterHandler {
	return &PostRegisterHandler{svc: svc, store: store, log: log}
}

// Execute creates an account and logs it in.
//
//	@Summary	Register
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CredentialsRequest	true	"Credentials"
//	@Success	201		{object}	AccountResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/auth/register [post]
func (h *PostRegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CredentialsRequest](w, r)
	if !ok {
		return
	}

	account, err := h.svc.Account.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.StartSession(w, r, h.store, account.ID); err != nil {
		h.log.ErrorContext(r.Context(), "failed to start session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed to start session")
		return
	}
	httpx.JSON(w, http.StatusCreated, toAccountResponse(account))
}
