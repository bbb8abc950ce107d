package handler

import (
	"errors"
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/auth"
	"cambio/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ToggleAlert godoc
// @Summary Toggle rate alert
// @Description Flip the active flag of one of the caller's alerts
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /alerts/{id}/toggle [patch]
func (h *Handler) ToggleAlert(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid alert ID format")
		return
	}

	toggled, err := h.service.Toggle(r.Context(), session, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "alert not found")
			return
		}
		msg := "ups, couldn't update alert this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ToggleAlert", "alert_id": id}).Error(msg)
		response.Error(w, http.StatusInternalServerError, msg)
		return
	}

	response.JSON(w, http.StatusOK, toResponse(toggled))
}
