package handler

import (
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/domain"
	"cambio/internal/exchange"
)

type RatesResponse struct {
	Buy       float64            `json:"buy" example:"3.72"`
	Sell      float64            `json:"sell" example:"3.78"`
	Policy    string             `json:"minimum_policy" example:"usd_equivalent"`
	Minimums  map[string]float64 `json:"minimums"`
	UnitRates map[string]string  `json:"unit_rates"`
}

// GetRates godoc
// @Summary Current rates
// @Description Buy/sell rates, minimum amount per source currency and unit quotes
// @Tags Exchange
// @Produce json
// @Success 200 {object} RatesResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, _ *http.Request) {
	calc := h.service.Calculator()
	rates := calc.Rates()

	res := RatesResponse{
		Buy:       rates.Buy.InexactFloat64(),
		Sell:      rates.Sell.InexactFloat64(),
		Policy:    calc.Policy().Name(),
		Minimums:  make(map[string]float64, 2),
		UnitRates: make(map[string]string, 2),
	}
	for _, c := range []domain.Currency{domain.PEN, domain.USD} {
		res.Minimums[string(c)] = calc.Minimum(c).InexactFloat64()
		res.UnitRates[string(c)] = exchange.InverseRate(c, rates)
	}
	response.JSON(w, http.StatusOK, res)
}
