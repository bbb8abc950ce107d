package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cambio/internal/api/response"
	"cambio/internal/domain"
	"cambio/internal/exchange"
	ophandler "cambio/internal/operation/handler"

	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 10

type ExchangeService interface {
	Calculator() *exchange.Calculator
	Quote(rawAmount string, source domain.Currency) exchange.Quote
	Start(ctx context.Context, session domain.Session) (exchange.View, error)
	Get(session domain.Session, id string) (exchange.View, error)
	Simulate(session domain.Session, id string, f exchange.Form) (exchange.View, error)
	Confirm(session domain.Session, id string) (exchange.View, error)
	Proceed(session domain.Session, id string) (exchange.View, error)
	Back(session domain.Session, id string) (exchange.View, error)
	Complete(ctx context.Context, session domain.Session, id string, transferNumber string) (exchange.View, error)
	Discard(session domain.Session, id string) error
}

type Handler struct {
	service ExchangeService
}

func NewExchangeHandler(service ExchangeService) *Handler {
	return &Handler{service: service}
}

type ExchangeResponse struct {
	ID              string                       `json:"id" example:"1f0b7c3e-9a55-4c0e-8d4e-6f1e2a3b4c5d"`
	Step            string                       `json:"step" example:"simulate"`
	Amount          float64                      `json:"amount" example:"1000"`
	SourceCurrency  string                       `json:"source_currency" example:"PEN"`
	TargetCurrency  string                       `json:"target_currency" example:"USD"`
	ConvertedAmount float64                      `json:"converted_amount" example:"264.55"`
	ExchangeRate    float64                      `json:"exchange_rate" example:"3.78"`
	MinimumAmount   float64                      `json:"minimum_amount" example:"378"`
	Message         string                       `json:"message,omitempty" example:"minimum amount is S/378.00"`
	SourceAccountID string                       `json:"source_account_id,omitempty"`
	TargetAccountID string                       `json:"target_account_id,omitempty"`
	TransferNumber  string                       `json:"transfer_number,omitempty"`
	Submitting      bool                         `json:"submitting"`
	SourceAccounts  []domain.BankAccount         `json:"source_accounts"`
	TargetAccounts  []domain.BankAccount         `json:"target_accounts"`
	Operation       *ophandler.OperationResponse `json:"operation,omitempty"`
	CreatedAt       time.Time                    `json:"created_at"`
}

func toResponse(v exchange.View) ExchangeResponse {
	res := ExchangeResponse{
		ID:              v.ID,
		Step:            string(v.Step),
		Amount:          v.Result.Amount.InexactFloat64(),
		SourceCurrency:  string(v.Result.Source),
		TargetCurrency:  string(v.Result.Target),
		ConvertedAmount: v.Result.Converted.InexactFloat64(),
		ExchangeRate:    v.Result.EffectiveRate.InexactFloat64(),
		MinimumAmount:   v.Result.Minimum.InexactFloat64(),
		Message:         v.Message,
		SourceAccountID: v.Form.SourceAccountID,
		TargetAccountID: v.Form.TargetAccountID,
		TransferNumber:  v.TransferNumber,
		Submitting:      v.Submitting,
		SourceAccounts:  v.SourceAccounts,
		TargetAccounts:  v.TargetAccounts,
		CreatedAt:       v.CreatedAt,
	}
	if res.SourceAccounts == nil {
		res.SourceAccounts = []domain.BankAccount{}
	}
	if res.TargetAccounts == nil {
		res.TargetAccounts = []domain.BankAccount{}
	}
	if v.Operation != nil {
		op := ophandler.ToResponse(*v.Operation)
		res.Operation = &op
	}
	return res
}

// writeWizardError maps wizard errors to statuses. Unknown errors are logged.
func writeWizardError(w http.ResponseWriter, err error, handler string, id string) {
	var verr *exchange.ValidationError
	switch {
	case errors.Is(err, exchange.ErrWizardNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnsupportedCurrency):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &verr),
		errors.Is(err, exchange.ErrAccountsRequired),
		errors.Is(err, exchange.ErrTransferNumberRequired):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, exchange.ErrInvalidTransition),
		errors.Is(err, exchange.ErrSubmissionInFlight):
		response.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, exchange.ErrSubmissionFailed):
		logrus.WithError(err).WithFields(logrus.Fields{"handler": handler, "exchange_id": id}).Warn("operation submission failed")
		response.Error(w, http.StatusServiceUnavailable, exchange.ErrSubmissionFailed.Error())
	default:
		msg := "ups, couldn't process the exchange this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": handler, "exchange_id": id}).Error(msg)
		response.Error(w, http.StatusInternalServerError, msg)
	}
}
