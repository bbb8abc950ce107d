package handler

import (
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/auth"
	"cambio/internal/domain"
	"cambio/internal/exchange"

	"github.com/go-chi/chi/v5"
)

type transitionFunc func(session domain.Session, id string) (exchange.View, error)

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, name string, fn transitionFunc) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	v, err := fn(session, id)
	if err != nil {
		writeWizardError(w, err, name, id)
		return
	}
	response.JSON(w, http.StatusOK, toResponse(v))
}

// ConfirmExchange godoc
// @Summary Confirm simulation
// @Description simulate -> confirm; requires the minimum amount and both accounts
// @Tags Exchange
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange ID"
// @Success 200 {object} ExchangeResponse
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Failure 422 {object} response.ErrorBody "below minimum or accounts missing"
// @Router /exchanges/{id}/confirm [post]
func (h *Handler) ConfirmExchange(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "ConfirmExchange", h.service.Confirm)
}

// ProceedToTransfer godoc
// @Summary Go to transfer
// @Description confirm -> transfer
// @Tags Exchange
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange ID"
// @Success 200 {object} ExchangeResponse
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /exchanges/{id}/transfer [post]
func (h *Handler) ProceedToTransfer(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "ProceedToTransfer", h.service.Proceed)
}

// BackExchange godoc
// @Summary Step back
// @Description confirm -> simulate or transfer -> confirm
// @Tags Exchange
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exchange ID"
// @Success 200 {object} ExchangeResponse
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /exchanges/{id}/back [post]
func (h *Handler) BackExchange(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "BackExchange", h.service.Back)
}
