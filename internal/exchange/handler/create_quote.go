package handler

import (
	"net/http"

	"cambio/internal/api/response"
	"cambio/internal/domain"
	"cambio/internal/exchange"
)

type QuoteRequest struct {
	Amount         string `json:"amount" example:"1000"`
	SourceCurrency string `json:"source_currency" example:"PEN"`
}

type QuoteResponse struct {
	Amount          float64 `json:"amount" example:"1000"`
	SourceCurrency  string  `json:"source_currency" example:"PEN"`
	TargetCurrency  string  `json:"target_currency" example:"USD"`
	ConvertedAmount float64 `json:"converted_amount" example:"264.55"`
	ExchangeRate    float64 `json:"exchange_rate" example:"3.78"`
	MinimumAmount   float64 `json:"minimum_amount" example:"378"`
	UnitRate        string  `json:"unit_rate" example:"1 PEN = 0.2646 USD"`
	Valid           bool    `json:"valid" example:"true"`
	Message         string  `json:"message,omitempty" example:"minimum amount is S/378.00"`
}

// CreateQuote godoc
// @Summary Quote a conversion
// @Description Convert raw user input; invalid amounts count as zero
// @Tags Exchange
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Amount and source currency"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} response.ErrorBody
// @Router /quotes [post]
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := response.DecodeStrict(w, r, maxBodyBytes, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	source, err := domain.ParseCurrency(req.SourceCurrency)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	q := h.service.Quote(req.Amount, source)
	response.JSON(w, http.StatusOK, QuoteResponse{
		Amount:          q.Amount.InexactFloat64(),
		SourceCurrency:  string(q.Source),
		TargetCurrency:  string(q.Target),
		ConvertedAmount: q.Converted.InexactFloat64(),
		ExchangeRate:    q.EffectiveRate.InexactFloat64(),
		MinimumAmount:   q.Minimum.InexactFloat64(),
		UnitRate:        q.UnitRate,
		Valid:           exchange.IsValid(q.Amount, q.Minimum) && !exchange.ExceedsMaximum(q.Amount),
		Message:         q.Message,
	})
}
