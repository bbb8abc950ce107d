package handler

import (
	"net/http"

	"cambio/internal/auth"

	"github.com/go-chi/chi/v5"
)

// DiscardExchange godoc
// @Summary Discard exchange
// @Description Drop the wizard when the user leaves the flow
// @Tags Exchange
// @Security BearerAuth
// @Param id path string true "Exchange ID"
// @Success 204
// @Failure 404 {object} response.ErrorBody
// @Router /exchanges/{id} [delete]
func (h *Handler) DiscardExchange(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Discard(session, id); err != nil {
		writeWizardError(w, err, "DiscardExchange", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
