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

// DeleteAccount godoc
// @Summary Delete bank account
// @Tags Accounts
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 204
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /accounts/{id} [delete]
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid account ID format")
		return
	}

	if err := h.service.Delete(r.Context(), session, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "account not found")
			return
		}
		msg := "ups, couldn't delete account this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteAccount", "account_id": id}).Error(msg)
		response.Error(w, http.StatusInternalServerError, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
