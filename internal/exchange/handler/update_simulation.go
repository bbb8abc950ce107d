package handler

import (
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/auth"
	"cambio/internal/exchange"

	"github.com/go-chi/chi/v5"
)

type SimulationRequest struct {
	Amount          string `json:"amount" example:"1000"`
	SourceCurrency  string `json:"source_currency" example:"PEN"`
	SourceAccountID string `json:"source_account_id" example:"5a1e2f1c-8f52-4c40-9a44-3c2b1d0e9f77"`
	TargetAccountID string `json:"target_account_id" example:"0e3b7d4c-2a1f-4d6e-9b8a-7c5d3e1f2a4b"`
}

// UpdateSimulation godoc
// @Summary Edit simulation
// @Description Replace amount, currency and accounts while in the simulate step
// @Tags Exchange
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange ID"
// @Param request body SimulationRequest true "Simulation form"
// @Success 200 {object} ExchangeResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody "not in simulate step"
// @Router /exchanges/{id}/simulation [put]
func (h *Handler) UpdateSimulation(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req SimulationRequest
	if err := response.DecodeStrict(w, r, maxBodyBytes, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form, err := exchange.FormFromInput(req.Amount, req.SourceCurrency, req.SourceAccountID, req.TargetAccountID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.service.Simulate(session, id, form)
	if err != nil {
		writeWizardError(w, err, "UpdateSimulation", id)
		return
	}
	response.JSON(w, http.StatusOK, toResponse(v))
}
