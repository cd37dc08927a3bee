package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wardrobecapital/wardrobe/pkg/errhttp"
	"github.com/wardrobecapital/wardrobe/pkg/httpx"
	appsvcs "github.com/wardrobecapital/wardrobe/services/wardrobe/application/services"
	"github.com/wardrobecapital/wardrobe/services/wardrobe/domain/models"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes one item.
//
//	@Summary	Delete item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		string	true	"Item ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Item.Delete(r.Context(), owner, models.ItemID(chi.URLParam(r, "id"))); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "Item deleted"})
}
