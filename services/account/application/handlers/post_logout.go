package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/wardrobecapital/wardrobe/pkg/auth"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
)

// PostLogoutHandler handles POST /auth/logout requests.
type PostLogoutHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewPostLogoutHandler returns a PostLogoutHandler that ends sessions in store.
func NewPostLogoutHandler(store sessions.Store, log logger.Logger) *PostLogoutHandler {
	return &PostLogoutHandler{store: store, log: log}
}

// Execute ends the session. Logging out without a session succeeds.
//
//	@Summary	Log out
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Router		/auth/logout [post]
func (h *PostLogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.EndSession(w, r, h.store); err != nil {
		h.log.WarnContext(r.Context(), "failed to end session", "error", err)
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
}
