package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		raw     string
		want    Currency
		wantErr error
	}{
		{raw: "PEN", want: PEN},
		{raw: " usd ", want: USD},
		{raw: "eur", wantErr: ErrUnsupportedCurrency},
		{raw: "", wantErr: ErrUnsupportedCurrency},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseCurrency(tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCurrency_CounterAndSymbol(t *testing.T) {
	require.Equal(t, USD, PEN.Counter())
	require.Equal(t, PEN, USD.Counter())
	require.Equal(t, "S/", PEN.Symbol())
	require.Equal(t, "$", USD.Symbol())
}

func TestNewRateTable(t *testing.T) {
	rt, err := NewRateTable(3.72, 3.78)
	require.NoError(t, err)
	require.Equal(t, "3.78", rt.For(PEN).String())
	require.Equal(t, "3.72", rt.For(USD).String())

	_, err = NewRateTable(0, 3.78)
	require.ErrorIs(t, err, ErrInvalidRateTable)
	_, err = NewRateTable(3.72, -1)
	require.ErrorIs(t, err, ErrInvalidRateTable)
}

func TestFilterByCurrency(t *testing.T) {
	accounts := []BankAccount{
		{ID: "1", Currency: PEN},
		{ID: "2", Currency: USD},
		{ID: "3", Currency: PEN},
	}

	pen := FilterByCurrency(accounts, PEN)
	require.Len(t, pen, 2)
	require.Equal(t, "1", pen[0].ID)
	require.Equal(t, "3", pen[1].ID)
	require.Empty(t, FilterByCurrency(nil, USD))
}

func TestAlert_Reached(t *testing.T) {
	target := decimal.RequireFromString("3.75")
	above := Alert{TargetRate: target, Direction: DirectionAbove}
	below := Alert{TargetRate: target, Direction: DirectionBelow}

	require.True(t, above.Reached(decimal.RequireFromString("3.78")))
	require.True(t, above.Reached(target))
	require.False(t, above.Reached(decimal.RequireFromString("3.70")))

	require.True(t, below.Reached(decimal.RequireFromString("3.70")))
	require.True(t, below.Reached(target))
	require.False(t, below.Reached(decimal.RequireFromString("3.78")))
}
