package handler

import (
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/auth"

	"github.com/go-chi/chi/v5"
)

// GetExchange godoc
// @Summary Get exchange
// @Tags Exchange
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange ID"
// @Success 200 {object} ExchangeResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody "not found or expired"
// @Router /exchanges/{id} [get]
func (h *Handler) GetExchange(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	v, err := h.service.Get(session, id)
	if err != nil {
		writeWizardError(w, err, "GetExchange", id)
		return
	}
	response.JSON(w, http.StatusOK, toResponse(v))
}
