package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cambio/internal/alert"
	"cambio/internal/auth"
	"cambio/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) List(ctx context.Context, session domain.Session) ([]domain.Alert, error) {
	args := m.Called(ctx, session)
	alerts, _ := args.Get(0).([]domain.Alert)
	return alerts, args.Error(1)
}

func (m *MockService) Create(ctx context.Context, session domain.Session, in alert.CreateInput) (domain.Alert, error) {
	args := m.Called(ctx, session, in)
	a, _ := args.Get(0).(domain.Alert)
	return a, args.Error(1)
}

func (m *MockService) Toggle(ctx context.Context, session domain.Session, id string) (domain.Alert, error) {
	args := m.Called(ctx, session, id)
	a, _ := args.Get(0).(domain.Alert)
	return a, args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, session domain.Session, id string) error {
	args := m.Called(ctx, session, id)
	return args.Error(0)
}

type errorJSON struct {
	Error string `json:"error"`
}

const alertID = "0b6f3c8e-3c36-4d0c-9e55-7c1c0e0b1f10"

var session = domain.Session{UserID: "user-1"}

func authed(req *http.Request, params map[string]string) *http.Request {
	ctx := auth.WithSession(req.Context(), session)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestHandler_ListAlerts_Unauthenticated(t *testing.T) {
	mockService := new(MockService)
	h := NewAlertHandler(mockService)

	rr := httptest.NewRecorder()
	h.ListAlerts(rr, httptest.NewRequest(http.MethodGet, "/alerts", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandler_ListAlerts_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewAlertHandler(mockService)

	created := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	mockService.On("List", mock.Anything, session).Return([]domain.Alert{
		{ID: alertID, TargetRate: decimal.RequireFromString("3.75"), Direction: domain.DirectionBelow, IsActive: true, CreatedAt: created},
	}, nil).Once()

	rr := httptest.NewRecorder()
	h.ListAlerts(rr, authed(httptest.NewRequest(http.MethodGet, "/alerts", nil), nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var res ListAlertsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Alerts, 1)
	require.InDelta(t, 3.75, res.Alerts[0].TargetRate, 1e-9)
	require.Equal(t, "below", res.Alerts[0].Direction)
	require.True(t, res.Alerts[0].CreatedAt.Equal(created))
	mockService.AssertExpectations(t)
}

func TestHandler_ListAlerts_InternalError(t *testing.T) {
	mockService := new(MockService)
	h := NewAlertHandler(mockService)
	mockService.On("List", mock.Anything, session).Return(nil, errors.New("boom")).Once()

	rr := httptest.NewRecorder()
	h.ListAlerts(rr, authed(httptest.NewRequest(http.MethodGet, "/alerts", nil), nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, "ups, couldn't list alerts this time", ej.Error)
}

func TestHandler_CreateAlert_InvalidBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "broken json", body: "{"},
		{name: "unknown field", body: `{"target_rate":3.7,"extra":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockService)
			h := NewAlertHandler(mockService)

			rr := httptest.NewRecorder()
			h.CreateAlert(rr, authed(httptest.NewRequest(http.MethodPost, "/alerts", bytes.NewBufferString(tc.body)), nil))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			var ej errorJSON
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
			require.Equal(t, "invalid request body", ej.Error)
			mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_CreateAlert_ValidationError(t *testing.T) {
	mockService := new(MockService)
	h := NewAlertHandler(mockService)
	mockService.On("Create", mock.Anything, session, mock.Anything).Return(domain.Alert{}, alert.ErrInvalidTargetRate).Once()

	rr := httptest.NewRecorder()
	h.CreateAlert(rr, authed(httptest.NewRequest(http.MethodPost, "/alerts", bytes.NewBufferString(`{"target_rate":0}`)), nil))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, alert.ErrInvalidTargetRate.Error(), ej.Error)
}

func TestHandler_CreateAlert_Success(t *testing.T) {
	mockService := new(MockService)
	h := NewAlertHandler(mockService)
	mockService.On("Create", mock.Anything, session, mock.MatchedBy(func(in alert.CreateInput) bool {
		return in.TargetRate.Equal(decimal.RequireFromString("3.7")) && in.Direction == domain.DirectionBelow
	})).Return(domain.Alert{ID: alertID, TargetRate: decimal.RequireFromString("3.7"), Direction: domain.DirectionBelow, IsActive: true}, nil).Once()

	body := `{"target_rate":3.7,"direction":"below"}`
	rr := httptest.NewRecorder()
	h.CreateAlert(rr, authed(httptest.NewRequest(http.MethodPost, "/alerts", bytes.NewBufferString(body)), nil))

	require.Equal(t, http.StatusCreated, rr.Code)
	var res AlertResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, alertID, res.ID)
	require.True(t, res.IsActive)
	mockService.AssertExpectations(t)
}

func TestHandler_ToggleAlert(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		mockService := new(MockService)
		h := NewAlertHandler(mockService)

		rr := httptest.NewRecorder()
		h.ToggleAlert(rr, authed(httptest.NewRequest(http.MethodPatch, "/alerts/x/toggle", nil), map[string]string{"id": "x"}))

		require.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := new(MockService)
		h := NewAlertHandler(mockService)
		mockService.On("Toggle", mock.Anything, session, alertID).Return(domain.Alert{}, domain.ErrNotFound).Once()

		rr := httptest.NewRecorder()
		h.ToggleAlert(rr, authed(httptest.NewRequest(http.MethodPatch, "/alerts/"+alertID+"/toggle", nil), map[string]string{"id": alertID}))

		require.Equal(t, http.StatusNotFound, rr.Code)
		var ej errorJSON
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
		require.Equal(t, "alert not found", ej.Error)
	})

	t.Run("success", func(t *testing.T) {
		mockService := new(MockService)
		h := NewAlertHandler(mockService)
		mockService.On("Toggle", mock.Anything, session, alertID).Return(domain.Alert{ID: alertID, IsActive: false}, nil).Once()

		rr := httptest.NewRecorder()
		h.ToggleAlert(rr, authed(httptest.NewRequest(http.MethodPatch, "/alerts/"+alertID+"/toggle", nil), map[string]string{"id": alertID}))

		require.Equal(t, http.StatusOK, rr.Code)
		var res AlertResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
		require.False(t, res.IsActive)
	})
}

func TestHandler_DeleteAlert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(MockService)
		h := NewAlertHandler(mockService)
		mockService.On("Delete", mock.Anything, session, alertID).Return(nil).Once()

		rr := httptest.NewRecorder()
		h.DeleteAlert(rr, authed(httptest.NewRequest(http.MethodDelete, "/alerts/"+alertID, nil), map[string]string{"id": alertID}))

		require.Equal(t, http.StatusNoContent, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("internal error", func(t *testing.T) {
		mockService := new(MockService)
		h := NewAlertHandler(mockService)
		mockService.On("Delete", mock.Anything, session, alertID).Return(errors.New("boom")).Once()

		rr := httptest.NewRecorder()
		h.DeleteAlert(rr, authed(httptest.NewRequest(http.MethodDelete, "/alerts/"+alertID, nil), map[string]string{"id": alertID}))

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		var ej errorJSON
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
		require.Equal(t, "ups, couldn't delete alert this time", ej.Error)
	})
}
