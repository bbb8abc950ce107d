package api

import (
	"net/http"

	_ "cambio/docs"
	accounthandler "cambio/internal/account/handler"
	alerthandler "cambio/internal/alert/handler"
	exchangehandler "cambio/internal/exchange/handler"
	operationhandler "cambio/internal/operation/handler"
	profilehandler "cambio/internal/profile/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Exchange   *exchangehandler.Handler
	Accounts   *accounthandler.Handler
	Alerts     *alerthandler.Handler
	Operations *operationhandler.Handler
	Profile    *profilehandler.Handler
	Metrics    http.Handler
}

// NewRouter mounts the public calculator routes and the session-protected
// user routes under /api/v1.
func NewRouter(h Handlers, requireSession func(http.Handler) http.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	if h.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/rates", h.Exchange.GetRates)
		r.Post("/quotes", h.Exchange.CreateQuote)

		r.Group(func(r chi.Router) {
			r.Use(requireSession)

			r.Get("/accounts", h.Accounts.ListAccounts)
			r.Post("/accounts", h.Accounts.CreateAccount)
			r.Delete("/accounts/{id}", h.Accounts.DeleteAccount)

			r.Get("/alerts", h.Alerts.ListAlerts)
			r.Post("/alerts", h.Alerts.CreateAlert)
			r.Patch("/alerts/{id}/toggle", h.Alerts.ToggleAlert)
			r.Delete("/alerts/{id}", h.Alerts.DeleteAlert)

			r.Get("/operations", h.Operations.ListOperations)

			r.Get("/profile", h.Profile.GetProfile)
			r.Put("/profile", h.Profile.PutProfile)

			r.Post("/exchanges", h.Exchange.StartExchange)
			r.Get("/exchanges/{id}", h.Exchange.GetExchange)
			r.Delete("/exchanges/{id}", h.Exchange.DiscardExchange)
			r.Put("/exchanges/{id}/simulation", h.Exchange.UpdateSimulation)
			r.Post("/exchanges/{id}/confirm", h.Exchange.ConfirmExchange)
			r.Post("/exchanges/{id}/transfer", h.Exchange.ProceedToTransfer)
			r.Post("/exchanges/{id}/back", h.Exchange.BackExchange)
			r.Post("/exchanges/{id}/complete", h.Exchange.CompleteExchange)
		})
	})
	return router
}
