package handler

import (
	"errors"
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/auth"
	"cambio/internal/exchange"

	"github.com/sirupsen/logrus"
)

// StartExchange godoc
// @Summary Start exchange
// @Description Open a new exchange wizard with the caller's accounts loaded
// @Tags Exchange
// @Produce json
// @Security BearerAuth
// @Success 201 {object} ExchangeResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Failure 503 {object} response.ErrorBody
// @Router /exchanges [post]
func (h *Handler) StartExchange(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	v, err := h.service.Start(r.Context(), session)
	if errors.Is(err, exchange.ErrWizardUnavailable) {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "StartExchange", "user_id": session.UserID}).Warn("wizard store refused exchange")
		response.Error(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		msg := "ups, couldn't start the exchange this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "StartExchange", "user_id": session.UserID}).Error(msg)
		response.Error(w, http.StatusInternalServerError, msg)
		return
	}

	response.JSON(w, http.StatusCreated, toResponse(v))
}
