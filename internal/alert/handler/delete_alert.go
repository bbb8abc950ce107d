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

// DeleteAlert godoc
// @Summary Delete rate alert
// @Tags Alerts
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /alerts/{id} [delete]
func (h *Handler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid alert ID format")
		return
	}

	if err := h.service.Delete(r.Context(), session, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "alert not found")
			return
		}
		msg := "ups, couldn't delete alert this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteAlert", "alert_id": id}).Error(msg)
		response.Error(w, http.StatusInternalServerError, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
