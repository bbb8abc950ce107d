package exchange

import (
	"cambio/internal/domain"

	"github.com/shopspring/decimal"
)

// Quote is what the calculator widgets render for one keystroke.
type Quote struct {
	Result
	UnitRate string
	// Message is set when the amount is below the minimum.
	Message string
}

// Calculator binds the process-wide rate table to a minimum policy.
type Calculator struct {
	rates  domain.RateTable
	policy MinimumPolicy
}

func (c *Calculator) Rates() domain.RateTable { return c.rates }

func (c *Calculator) Policy() MinimumPolicy { return c.policy }

func (c *Calculator) Minimum(source domain.Currency) decimal.Decimal {
	return c.policy.Minimum(source, c.rates)
}

// Convert is the engine conversion with the policy minimum attached.
func (c *Calculator) Convert(amount decimal.Decimal, source domain.Currency) Result {
	res := Convert(amount, source, c.rates)
	res.Minimum = c.Minimum(source)
	return res
}

func (c *Calculator) Quote(amount decimal.Decimal, source domain.Currency) Quote {
	res := c.Convert(amount, source)
	q := Quote{Result: res, UnitRate: InverseRate(source, c.rates)}
	if err := CheckAmount(res.Amount, source, res.Minimum); err != nil {
		q.Message = err.Error()
	}
	return q
}

func NewCalculator(rates domain.RateTable, policy MinimumPolicy) *Calculator {
	return &Calculator{rates: rates, policy: policy}
}
