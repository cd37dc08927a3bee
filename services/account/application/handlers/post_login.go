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

// PostLoginHandler handles POST /auth/login requests.
type PostLoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

// NewPostLoginHandler returns a PostLoginHandler that starts sessions in store.
func NewPostLoginHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *PostLoginHandler {
	return &PostLoginHandler{svc: svc, store: store, log: log}
}

// Execute checks credentials and starts a session.
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CredentialsRequest	true	"Credentials"
//	@Success	200		{object}	AccountResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/auth/login [post]
func (h *PostLoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CredentialsRequest](w, r)
	if !ok {
		return
	}

	account, err := h.svc.Account.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := auth.StartSession(w, r, h.store, account.ID); err != nil {
		h.log.ErrorContext(r.Context(), "failed to start session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed to start session")
		return
	}
	httpx.JSON(w, http.StatusOK, toAccountResponse(account))
}
