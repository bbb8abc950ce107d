package handler

import (
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/auth"

	"github.com/go-chi/chi/v5"
)

type CompleteRequest struct {
	TransferNumber string `json:"transfer_number" example:"OP-123456"`
}

// CompleteExchange godoc
// @Summary Complete exchange
// @Description Register the bank transfer reference and submit one pending operation
// @Tags Exchange
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange ID"
// @Param request body CompleteRequest true "Transfer reference"
// @Success 200 {object} ExchangeResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody "not in transfer step or submission in flight"
// @Failure 422 {object} response.ErrorBody "transfer number missing"
// @Failure 503 {object} response.ErrorBody "submission failed, retry"
// @Router /exchanges/{id}/complete [post]
func (h *Handler) CompleteExchange(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req CompleteRequest
	if err := response.DecodeStrict(w, r, maxBodyBytes, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.service.Complete(r.Context(), session, id, req.TransferNumber)
	if err != nil {
		writeWizardError(w, err, "CompleteExchange", id)
		return
	}
	response.JSON(w, http.StatusOK, toResponse(v))
}
