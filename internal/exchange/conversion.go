package exchange

import (
	"fmt"
	"strings"

	"cambio/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	amountPlaces      = 2
	divisionPrecision = 16
)

// Result is a derived conversion, recomputed on every input change.
type Result struct {
	Source        domain.Currency
	Target        domain.Currency
	Amount        decimal.Decimal
	Converted     decimal.Decimal
	EffectiveRate decimal.Decimal
	Minimum       decimal.Decimal
}

// Convert turns amount of source into the counter currency. The division
// keeps full precision and only the output is rounded half-up to 2 places.
// Minimum is left zero; Calculator fills it from the policy.
func Convert(amount decimal.Decimal, source domain.Currency, rates domain.RateTable) Result {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	rate := rates.For(source)

	var converted decimal.Decimal
	if source == domain.PEN {
		converted = amount.DivRound(rate, divisionPrecision)
	} else {
		converted = amount.Mul(rate)
	}

	return Result{
		Source:        source,
		Target:        source.Counter(),
		Amount:        amount,
		Converted:     converted.Round(amountPlaces),
		EffectiveRate: rate,
	}
}

// ParseAmount reads user input rounded half-up to cents. Empty, non-numeric
// and negative input is treated as zero; gating submission is the caller's
// job.
func ParseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(amountPlaces)
}

// InverseRate renders the per-unit quote shown next to the calculators,
// e.g. "1 PEN = 0.2646 USD" or "1 USD = 3.72 PEN".
func InverseRate(source domain.Currency, rates domain.RateTable) string {
	rate := rates.For(source)
	if source == domain.PEN {
		return fmt.Sprintf("1 PEN = %s USD", decimal.NewFromInt(1).DivRound(rate, divisionPrecision).StringFixed(4))
	}
	return fmt.Sprintf("1 USD = %s PEN", rate.StringFixed(2))
}

// FormatMoney prints d with the currency symbol and two decimals.
func FormatMoney(c domain.Currency, d decimal.Decimal) string {
	return c.Symbol() + d.StringFixed(amountPlaces)
}
