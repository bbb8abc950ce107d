package handler

import (
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/auth"

	"github.com/sirupsen/logrus"
)

type ListAlertsResponse struct {
	Alerts []AlertResponse `json:"alerts"`
}

// ListAlerts godoc
// @Summary List rate alerts
// @Description List the caller's rate alerts, newest first
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListAlertsResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /alerts [get]
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	alerts, err := h.service.List(r.Context(), session)
	if err != nil {
		msg := "ups, couldn't list alerts this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListAlerts", "user_id": session.UserID}).Error(msg)
		response.Error(w, http.StatusInternalServerError, msg)
		return
	}

	res := ListAlertsResponse{Alerts: make([]AlertResponse, 0, len(alerts))}
	for _, a := range alerts {
		res.Alerts = append(res.Alerts, toResponse(a))
	}
	response.JSON(w, http.StatusOK, res)
}
