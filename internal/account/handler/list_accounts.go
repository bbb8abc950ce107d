package handler

import (
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/auth"
	"cambio/internal/domain"

	"github.com/sirupsen/logrus"
)

type ListAccountsResponse struct {
	Accounts []domain.BankAccount `json:"accounts"`
}

// ListAccounts godoc
// @Summary List bank accounts
// @Description List the caller's registered bank accounts
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ListAccountsResponse
// @Failure 401 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /accounts [get]
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	accounts, err := h.service.List(r.Context(), session)
	if err != nil {
		msg := "ups, couldn't list accounts this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListAccounts", "user_id": session.UserID}).Error(msg)
		response.Error(w, http.StatusInternalServerError, msg)
		return
	}
	if accounts == nil {
		accounts = []domain.BankAccount{}
	}
	response.JSON(w, http.StatusOK, ListAccountsResponse{Accounts: accounts})
}
