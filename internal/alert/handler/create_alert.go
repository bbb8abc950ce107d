package handler

import (
	"errors"
	"net/http"

	"cambio/internal/alert"
	"cambio/internal/api/response"
	"cambio/internal/auth"
	"cambio/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type CreateAlertRequest struct {
	TargetRate decimal.Decimal `json:"target_rate" swaggertype:"number" example:"3.75"`
	Direction  string          `json:"direction" example:"above"`
}

// CreateAlert godoc
// @Summary Create rate alert
// @Description Watch the sell rate until it goes above or below a target
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAlertRequest true "Alert"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /alerts [post]
func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	var req CreateAlertRequest
	if err := response.DecodeStrict(w, r, maxBodyBytes, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), session, alert.CreateInput{
		TargetRate: req.TargetRate,
		Direction:  domain.AlertDirection(req.Direction),
	})
	if err != nil {
		if errors.Is(err, alert.ErrInvalidTargetRate) || errors.Is(err, alert.ErrInvalidDirection) {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := "ups, couldn't create alert this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateAlert", "user_id": session.UserID}).Error(msg)
		response.Error(w, http.StatusInternalServerError, msg)
		return
	}

	response.JSON(w, http.StatusCreated, toResponse(created))
}
