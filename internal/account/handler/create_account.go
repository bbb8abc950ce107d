package handler

import (
	"errors"
	"net/http"

	"cambio/internal/account"
	"cambio/internal/api/response"
	"cambio/internal/auth"
	"cambio/internal/domain"

	"github.com/sirupsen/logrus"
)

type CreateAccountRequest struct {
	BankName      string `json:"bank_name" example:"BCP"`
	AccountNumber string `json:"account_number" example:"191-12345678-0-12"`
	Currency      string `json:"currency" example:"PEN"`
	AccountType   string `json:"account_type" example:"savings"`
}

// CreateAccount godoc
// @Summary Register bank account
// @Description Register a PEN or USD bank account for the caller
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAccountRequest true "Account"
// @Success 201 {object} domain.BankAccount
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody "account already registered"
// @Failure 500 {object} response.ErrorBody
// @Router /accounts [post]
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.RequireSession(w, r)
	if !ok {
		return
	}

	var req CreateAccountRequest
	if err := response.DecodeStrict(w, r, maxBodyBytes, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), session, account.CreateInput{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Currency:      req.Currency,
		AccountType:   req.AccountType,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrBankNameRequired),
			errors.Is(err, account.ErrAccountNumberRequired),
			errors.Is(err, account.ErrInvalidAccountType),
			errors.Is(err, domain.ErrUnsupportedCurrency):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrDuplicateAccount):
			response.Error(w, http.StatusConflict, err.Error())
		default:
			msg := "ups, couldn't register account this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateAccount", "user_id": session.UserID}).Error(msg)
			response.Error(w, http.StatusInternalServerError, msg)
		}
		return
	}

	response.JSON(w, http.StatusCreated, created)
}
