package handler

import (
	"net/http"
	"strconv"

	"cambio/internal/api/response"
	"cambio/internal/auth"

	"github.com/sirupsen/logrus"
)

type ListOperationsResponse struct {
	Operations []OperationResponse `json:"operations"`
}

// ListOperations godoc
// @Summary Recent operations
// @Description List the caller's exchange operations, newest first
// @Tags Operations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max operations (default 20, max 100)"
// @Success 200 {object} ListOperationsResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /operations [get]
func (h *Handler) ListOperations(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Error(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	ops, err := h.service.Recent(r.Context(), session, limit)
	if err != nil {
		msg := "ups, couldn't list operations this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListOperations", "user_id": session.UserID}).Error(msg)
		response.Error(w, http.StatusInternalServerError, msg)
		return
	}

	res := ListOperationsResponse{Operations: make([]OperationResponse, 0, len(ops))}
	for _, op := range ops {
		res.Operations = append(res.Operations, ToResponse(op))
	}
	response.JSON(w, http.StatusOK, res)
}
