package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cambio/internal/auth"
	"cambio/internal/domain"
	"cambio/internal/exchange"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) Calculator() *exchange.Calculator {
	args := m.Called()
	c, _ := args.Get(0).(*exchange.Calculator)
	return c
}

func (m *MockService) Quote(rawAmount string, source domain.Currency) exchange.Quote {
	args := m.Called(rawAmount, source)
	q, _ := args.Get(0).(exchange.Quote)
	return q
}

func (m *MockService) Start(ctx context.Context, session domain.Session) (exchange.View, error) {
	args := m.Called(ctx, session)
	v, _ := args.Get(0).(exchange.View)
	return v, args.Error(1)
}

func (m *MockService) Get(session domain.Session, id string) (exchange.View, error) {
	args := m.Called(session, id)
	v, _ := args.Get(0).(exchange.View)
	return v, args.Error(1)
}

func (m *MockService) Simulate(session domain.Session, id string, f exchange.Form) (exchange.View, error) {
	args := m.Called(session, id, f)
	v, _ := args.Get(0).(exchange.View)
	return v, args.Error(1)
}

func (m *MockService) Confirm(session domain.Session, id string) (exchange.View, error) {
	args := m.Called(session, id)
	v, _ := args.Get(0).(exchange.View)
	return v, args.Error(1)
}

func (m *MockService) Proceed(session domain.Session, id string) (exchange.View, error) {
	args := m.Called(session, id)
	v, _ := args.Get(0).(exchange.View)
	return v, args.Error(1)
}

func (m *MockService) Back(session domain.Session, id string) (exchange.View, error) {
	args := m.Called(session, id)
	v, _ := args.Get(0).(exchange.View)
	return v, args.Error(1)
}

func (m *MockService) Complete(ctx context.Context, session domain.Session, id string, transferNumber string) (exchange.View, error) {
	args := m.Called(ctx, session, id, transferNumber)
	v, _ := args.Get(0).(exchange.View)
	return v, args.Error(1)
}

func (m *MockService) Discard(session domain.Session, id string) error {
	args := m.Called(session, id)
	return args.Error(0)
}

type errorJSON struct {
	Error string `json:"error"`
}

const wizardID = "1f0b7c3e-9a55-4c0e-8d4e-6f1e2a3b4c5d"

var session = domain.Session{UserID: "user-1"}

func newCalculator(t *testing.T) *exchange.Calculator {
	t.Helper()
	rates, err := domain.NewRateTable(3.72, 3.78)
	require.NoError(t, err)
	policy, err := exchange.NewMinimumPolicy(exchange.PolicyUsdEquivalent, 100)
	require.NoError(t, err)
	return exchange.NewCalculator(rates, policy)
}

func wizardRequest(method, path string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", wizardID)
	ctx := context.WithValue(auth.WithSession(req.Context(), session), chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func viewAt(t *testing.T, step exchange.Step) exchange.View {
	t.Helper()
	c := newCalculator(t)
	return exchange.View{
		ID:     wizardID,
		Step:   step,
		Form:   exchange.Form{Amount: decimal.NewFromInt(1000), Source: domain.PEN, SourceAccountID: "acc-pen", TargetAccountID: "acc-usd"},
		Result: c.Convert(decimal.NewFromInt(1000), domain.PEN),
	}
}

// --- GetRates ---

func TestHandler_GetRates(t *testing.T) {
	mockService := new(MockService)
	h := NewExchangeHandler(mockService)
	mockService.On("Calculator").Return(newCalculator(t)).Once()

	rr := httptest.NewRecorder()
	h.GetRates(rr, httptest.NewRequest(http.MethodGet, "/rates", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var res RatesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.InDelta(t, 3.72, res.Buy, 1e-9)
	require.InDelta(t, 3.78, res.Sell, 1e-9)
	require.Equal(t, "usd_equivalent", res.Policy)
	require.InDelta(t, 378, res.Minimums["PEN"], 1e-9)
	require.InDelta(t, 100, res.Minimums["USD"], 1e-9)
	require.Equal(t, "1 PEN = 0.2646 USD", res.UnitRates["PEN"])
	require.Equal(t, "1 USD = 3.72 PEN", res.UnitRates["USD"])
}

// --- CreateQuote ---

func TestHandler_CreateQuote_Errors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "broken json", body: "{", wantMsg: "invalid request body"},
		{name: "unknown field", body: `{"amount":"1","source_currency":"PEN","x":1}`, wantMsg: "invalid request body"},
		{name: "unsupported currency", body: `{"amount":"1","source_currency":"EUR"}`, wantMsg: domain.ErrUnsupportedCurrency.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewExchangeHandler(mockService)

			rr := httptest.NewRecorder()
			h.CreateQuote(rr, httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(tc.body)))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.Equal(t, tc.wantMsg, ej.Error)
			mockService.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_CreateQuote_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewExchangeHandler(mockService)
	c := newCalculator(t)
	mockService.On("Quote", "50", domain.PEN).Return(c.Quote(decimal.NewFromInt(50), domain.PEN)).Once()

	body := `{"amount":"50","source_currency":"pen"}`
	rr := httptest.NewRecorder()
	h.CreateQuote(rr, httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	var res QuoteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "USD", res.TargetCurrency)
	require.InDelta(t, 13.23, res.ConvertedAmount, 1e-9)
	require.False(t, res.Valid)
	require.Equal(t, "minimum amount is S/378.00", res.Message)
	require.Equal(t, "1 PEN = 0.2646 USD", res.UnitRate)
	mockService.AssertExpectations(t)
}

func TestHandler_CreateQuote_AboveMaximum(t *testing.T) {
	mockService := new(MockService)
	h := NewExchangeHandler(mockService)
	c := newCalculator(t)
	mockService.On("Quote", "1e20", domain.USD).Return(c.Quote(exchange.ParseAmount("1e20"), domain.USD)).Once()

	body := `{"amount":"1e20","source_currency":"USD"}`
	rr := httptest.NewRecorder()
	h.CreateQuote(rr, httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	var res QuoteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.False(t, res.Valid)
	require.Equal(t, "maximum amount is $1000000000.00", res.Message)
}

// --- StartExchange ---

func TestHandler_StartExchange(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		mockService := new(MockService)
		h := NewExchangeHandler(mockService)
		rr := httptest.NewRecorder()
		h.StartExchange(rr, httptest.NewRequest(http.MethodPost, "/exchanges", nil))
		require.Equal(t, http.StatusUnauthorized, rr.Code)
		mockService.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
	})

	t.Run("internal error", func(t *testing.T) {
		mockService := new(MockService)
		h := NewExchangeHandler(mockService)
		mockService.On("Start", mock.Anything, session).Return(exchange.View{}, errors.New("db down")).Once()

		rr := httptest.NewRecorder()
		h.StartExchange(rr, wizardRequest(http.MethodPost, "/exchanges", ""))

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		var ej errorJSON
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
		require.Equal(t, "ups, couldn't start the exchange this time", ej.Error)
	})

	t.Run("store refused", func(t *testing.T) {
		mockService := new(MockService)
		h := NewExchangeHandler(mockService)
		mockService.On("Start", mock.Anything, session).Return(exchange.View{}, exchange.ErrWizardUnavailable).Once()

		rr := httptest.NewRecorder()
		h.StartExchange(rr, wizardRequest(http.MethodPost, "/exchanges", ""))

		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
		var ej errorJSON
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
		require.Equal(t, exchange.ErrWizardUnavailable.Error(), ej.Error)
	})

	t.Run("success", func(t *testing.T) {
		mockService := new(MockService)
		h := NewExchangeHandler(mockService)
		mockService.On("Start", mock.Anything, session).Return(viewAt(t, exchange.StepSimulate), nil).Once()

		rr := httptest.NewRecorder()
		h.StartExchange(rr, wizardRequest(http.MethodPost, "/exchanges", ""))

		require.Equal(t, http.StatusCreated, rr.Code)
		var res ExchangeResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
		require.Equal(t, wizardID, res.ID)
		require.Equal(t, "simulate", res.Step)
		require.InDelta(t, 264.55, res.ConvertedAmount, 1e-9)
		require.InDelta(t, 378, res.MinimumAmount, 1e-9)
		require.NotNil(t, res.SourceAccounts)
	})
}

// --- error mapping ---

func TestHandler_ConfirmExchange_ErrorMapping(t *testing.T) {
	belowMinimum := exchange.CheckAmount(decimal.NewFromInt(50), domain.PEN, decimal.NewFromInt(378))
	require.Error(t, belowMinimum)
	aboveMaximum := exchange.CheckAmount(decimal.RequireFromString("1e20"), domain.PEN, decimal.NewFromInt(378))
	require.Error(t, aboveMaximum)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "not found", err: exchange.ErrWizardNotFound, wantStatus: http.StatusNotFound, wantMsg: exchange.ErrWizardNotFound.Error()},
		{name: "below minimum", err: belowMinimum, wantStatus: http.StatusUnprocessableEntity, wantMsg: "minimum amount is S/378.00"},
		{name: "above maximum", err: aboveMaximum, wantStatus: http.StatusUnprocessableEntity, wantMsg: "maximum amount is S/1000000000.00"},
		{name: "accounts required", err: exchange.ErrAccountsRequired, wantStatus: http.StatusUnprocessableEntity, wantMsg: exchange.ErrAccountsRequired.Error()},
		{name: "wrong step", err: exchange.ErrInvalidTransition, wantStatus: http.StatusConflict, wantMsg: exchange.ErrInvalidTransition.Error()},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMsg: "ups, couldn't process the exchange this time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewExchangeHandler(mockService)
			mockService.On("Confirm", session, wizardID).Return(exchange.View{}, tc.err).Once()

			rr := httptest.NewRecorder()
			h.ConfirmExchange(rr, wizardRequest(http.MethodPost, "/exchanges/"+wizardID+"/confirm", ""))

			require.Equal(t, tc.wantStatus, rr.Code)
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.Equal(t, tc.wantMsg, ej.Error)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_Transitions_Success(t *testing.T) {
	cases := []struct {
		method string
		call   func(h *Handler) http.HandlerFunc
		step   exchange.Step
	}{
		{method: "Confirm", call: func(h *Handler) http.HandlerFunc { return h.ConfirmExchange }, step: exchange.StepConfirm},
		{method: "Proceed", call: func(h *Handler) http.HandlerFunc { return h.ProceedToTransfer }, step: exchange.StepTransfer},
		{method: "Back", call: func(h *Handler) http.HandlerFunc { return h.BackExchange }, step: exchange.StepConfirm},
	}

	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			mockService := new(MockService)
			h := NewExchangeHandler(mockService)
			mockService.On(tc.method, session, wizardID).Return(viewAt(t, tc.step), nil).Once()

			rr := httptest.NewRecorder()
			tc.call(h)(rr, wizardRequest(http.MethodPost, "/exchanges/"+wizardID, ""))

			require.Equal(t, http.StatusOK, rr.Code)
			var res ExchangeResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
			require.Equal(t, string(tc.step), res.Step)
			mockService.AssertExpectations(t)
		})
	}
}

// --- UpdateSimulation ---

func TestHandler_UpdateSimulation(t *testing.T) {
	t.Run("unsupported currency", func(t *testing.T) {
		mockService := new(MockService)
		h := NewExchangeHandler(mockService)

		body := `{"amount":"100","source_currency":"EUR","source_account_id":"","target_account_id":""}`
		rr := httptest.NewRecorder()
		h.UpdateSimulation(rr, wizardRequest(http.MethodPut, "/exchanges/"+wizardID+"/simulation", body))

		require.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Simulate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid amount is zero", func(t *testing.T) {
		mockService := new(MockService)
		h := NewExchangeHandler(mockService)
		mockService.On("Simulate", session, wizardID, mock.MatchedBy(func(f exchange.Form) bool {
			return f.Amount.IsZero() && f.Source == domain.USD && f.SourceAccountID == "acc-usd"
		})).Return(viewAt(t, exchange.StepSimulate), nil).Once()

		body := `{"amount":"abc","source_currency":"usd","source_account_id":"acc-usd","target_account_id":"acc-pen"}`
		rr := httptest.NewRecorder()
		h.UpdateSimulation(rr, wizardRequest(http.MethodPut, "/exchanges/"+wizardID+"/simulation", body))

		require.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("wrong step", func(t *testing.T) {
		mockService := new(MockService)
		h := NewExchangeHandler(mockService)
		mockService.On("Simulate", session, wizardID, mock.Anything).Return(exchange.View{}, exchange.ErrInvalidTransition).Once()

		body := `{"amount":"100","source_currency":"PEN"}`
		rr := httptest.NewRecorder()
		h.UpdateSimulation(rr, wizardRequest(http.MethodPut, "/exchanges/"+wizardID+"/simulation", body))

		require.Equal(t, http.StatusConflict, rr.Code)
	})
}

// --- CompleteExchange ---

func TestHandler_CompleteExchange_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "reference missing", err: exchange.ErrTransferNumberRequired, wantStatus: http.StatusUnprocessableEntity, wantMsg: exchange.ErrTransferNumberRequired.Error()},
		{name: "in flight", err: exchange.ErrSubmissionInFlight, wantStatus: http.StatusConflict, wantMsg: exchange.ErrSubmissionInFlight.Error()},
		{name: "submission failed", err: fmt.Errorf("%w: %w", exchange.ErrSubmissionFailed, errors.New("conn reset")), wantStatus: http.StatusServiceUnavailable, wantMsg: exchange.ErrSubmissionFailed.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewExchangeHandler(mockService)
			mockService.On("Complete", mock.Anything, session, wizardID, "OP-1").Return(exchange.View{}, tc.err).Once()

			rr := httptest.NewRecorder()
			h.CompleteExchange(rr, wizardRequest(http.MethodPost, "/exchanges/"+wizardID+"/complete", `{"transfer_number":"OP-1"}`))

			require.Equal(t, tc.wantStatus, rr.Code)
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.Equal(t, tc.wantMsg, ej.Error)
		})
	}
}

func TestHandler_CompleteExchange_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewExchangeHandler(mockService)

	v := viewAt(t, exchange.StepComplete)
	v.TransferNumber = "OP-1"
	v.Operation = &domain.Operation{
		ID:             "op-1",
		SourceCurrency: domain.PEN,
		TargetCurrency: domain.USD,
		SourceAmount:   decimal.NewFromInt(1000),
		TargetAmount:   decimal.RequireFromString("264.55"),
		ExchangeRate:   decimal.RequireFromString("3.78"),
		TransferNumber: "OP-1",
		Status:         domain.OperationPending,
	}
	mockService.On("Complete", mock.Anything, session, wizardID, "OP-1").Return(v, nil).Once()

	rr := httptest.NewRecorder()
	h.CompleteExchange(rr, wizardRequest(http.MethodPost, "/exchanges/"+wizardID+"/complete", `{"transfer_number":"OP-1"}`))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ExchangeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "complete", res.Step)
	require.NotNil(t, res.Operation)
	require.Equal(t, "op-1", res.Operation.ID)
	require.Equal(t, "pending", res.Operation.Status)
	mockService.AssertExpectations(t)
}

func TestHandler_CompleteExchange_InvalidBody(t *testing.T) {
	mockService := new(MockService)
	h := NewExchangeHandler(mockService)

	rr := httptest.NewRecorder()
	h.CompleteExchange(rr, wizardRequest(http.MethodPost, "/exchanges/"+wizardID+"/complete", `{"ref":"x"}`))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	mockService.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- GetExchange / DiscardExchange ---

func TestHandler_GetExchange_NotFound(t *testing.T) {
	mockService := new(MockService)
	h := NewExchangeHandler(mockService)
	mockService.On("Get", session, wizardID).Return(exchange.View{}, exchange.ErrWizardNotFound).Once()

	rr := httptest.NewRecorder()
	h.GetExchange(rr, wizardRequest(http.MethodGet, "/exchanges/"+wizardID, ""))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_DiscardExchange(t *testing.T) {
	mockService := new(MockService)
	h := NewExchangeHandler(mockService)
	mockService.On("Discard", session, wizardID).Return(nil).Once()

	rr := httptest.NewRecorder()
	h.DiscardExchange(rr, wizardRequest(http.MethodDelete, "/exchanges/"+wizardID, ""))

	require.Equal(t, http.StatusNoContent, rr.Code)
	mockService.AssertExpectations(t)
}
