package exchange

import (
	"errors"
	"fmt"

	"cambio/internal/domain"

	"github.com/shopspring/decimal"
)

const DefaultBaseMinimum = 100

// MaxAmount bounds a single operation so that both sides fit the stored
// numeric(14,2) columns at any configured rate.
var MaxAmount = decimal.NewFromInt(1_000_000_000)

var (
	ErrBelowMinimum = errors.New("amount is below the minimum")
	ErrAboveMaximum = errors.New("amount is above the maximum")
)

const (
	PolicyUsdEquivalent = "usd_equivalent"
	PolicyFlat          = "flat"
)

// MinimumPolicy decides the smallest transactional amount in source units.
type MinimumPolicy interface {
	Name() string
	Minimum(source domain.Currency, rates domain.RateTable) decimal.Decimal
}

// UsdEquivalentMinimum scales the base by the sell rate when paying in PEN
// and applies it flat when paying in USD. The two sides are asymmetric
// (buy is never used); kept as is until product confirms the intent.
type UsdEquivalentMinimum struct {
	Base decimal.Decimal
}

func (p UsdEquivalentMinimum) Name() string { return PolicyUsdEquivalent }

func (p UsdEquivalentMinimum) Minimum(source domain.Currency, rates domain.RateTable) decimal.Decimal {
	if source == domain.PEN {
		return p.Base.Mul(rates.Sell)
	}
	return p.Base
}

// FlatMinimum applies the same base regardless of currency.
type FlatMinimum struct {
	Base decimal.Decimal
}

func (p FlatMinimum) Name() string { return PolicyFlat }

func (p FlatMinimum) Minimum(domain.Currency, domain.RateTable) decimal.Decimal {
	return p.Base
}

func NewMinimumPolicy(name string, base float64) (MinimumPolicy, error) {
	if base <= 0 {
		base = DefaultBaseMinimum
	}
	b := decimal.NewFromFloat(base)
	switch name {
	case "", PolicyUsdEquivalent:
		return UsdEquivalentMinimum{Base: b}, nil
	case PolicyFlat:
		return FlatMinimum{Base: b}, nil
	default:
		return nil, fmt.Errorf("unknown minimum policy %q", name)
	}
}

// ValidationError is a user-correctable amount problem.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return e.Err }

func IsValid(amount, minimum decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(minimum)
}

func ExceedsMaximum(amount decimal.Decimal) bool {
	return amount.GreaterThan(MaxAmount)
}

// CheckAmount reports an amount outside [minimum, MaxAmount]. Zero means
// "nothing typed yet" and is never flagged.
func CheckAmount(amount decimal.Decimal, source domain.Currency, minimum decimal.Decimal) error {
	if ExceedsMaximum(amount) {
		return aboveMaximum(source)
	}
	if amount.IsZero() || IsValid(amount, minimum) {
		return nil
	}
	return belowMinimum(source, minimum)
}

func belowMinimum(source domain.Currency, minimum decimal.Decimal) *ValidationError {
	return &ValidationError{
		Err:     ErrBelowMinimum,
		Message: "minimum amount is " + FormatMoney(source, minimum),
	}
}

func aboveMaximum(source domain.Currency) *ValidationError {
	return &ValidationError{
		Err:     ErrAboveMaximum,
		Message: "maximum amount is " + FormatMoney(source, MaxAmount),
	}
}
