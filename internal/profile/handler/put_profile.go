package handler

import (
	"errors"
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/auth"
	"cambio/internal/profile"

	"github.com/sirupsen/logrus"
)

type PutProfileRequest struct {
	FullName string  `json:"full_name" example:"Ana Quispe"`
	DNI      string  `json:"dni" example:"12345678"`
	Phone    *string `json:"phone,omitempty" example:"+51 999 888 777"`
}

// PutProfile godoc
// @Summary Save profile
// @Description Create or update the caller's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PutProfileRequest true "Profile"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /profile [put]
func (h *Handler) PutProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	var req PutProfileRequest
	if err := response.DecodeStrict(w, r, maxBodyBytes, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.service.Upsert(r.Context(), session, profile.UpsertInput{
		FullName: req.FullName,
		DNI:      req.DNI,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, profile.ErrInvalidDNI) || errors.Is(err, profile.ErrFullNameRequired) {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := "ups, couldn't save profile this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "PutProfile", "user_id": session.UserID}).Error(msg)
		response.Error(w, http.StatusInternalServerError, msg)
		return
	}

	response.JSON(w, http.StatusOK, saved)
}
