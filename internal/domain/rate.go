package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	PEN Currency = "PEN"
	USD Currency = "USD"
)

// Counter returns the other side of the PEN/USD pair.
func (c Currency) Counter() Currency {
	if c == PEN {
		return USD
	}
	return PEN
}

func (c Currency) Symbol() string {
	if c == PEN {
		return "S/"
	}
	return "$"
}

func ParseCurrency(raw string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(raw))); c {
	case PEN, USD:
		return c, nil
	default:
		return "", ErrUnsupportedCurrency
	}
}

// RateTable holds the PEN/USD quotes. Buy applies when the platform buys USD
// from the user (USD -> PEN), Sell when it sells USD (PEN -> USD).
type RateTable struct {
	Buy  decimal.Decimal
	Sell decimal.Decimal
}

var ErrInvalidRateTable = errors.New("buy and sell rates must be positive")

func NewRateTable(buy, sell float64) (RateTable, error) {
	rt := RateTable{Buy: decimal.NewFromFloat(buy), Sell: decimal.NewFromFloat(sell)}
	if !rt.Buy.IsPositive() || !rt.Sell.IsPositive() {
		return RateTable{}, ErrInvalidRateTable
	}
	return rt, nil
}

// For returns the rate applied when converting from source.
func (rt RateTable) For(source Currency) decimal.Decimal {
	if source == PEN {
		return rt.Sell
	}
	return rt.Buy
}
