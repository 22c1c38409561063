package money_test

import (
	"testing"

	"github.com/amirasaad/minibank/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"integer", "1000", "1000.00", nil},
		{"dot decimals", "1000.50", "1000.50", nil},
		{"comma decimals", "12,30", "12.30", nil},
		{"currency prefix", "R$ 7,5", "7.50", nil},
		{"surrounding spaces", "  42  ", "42.00", nil},
		{"trailing zeros", "1.500", "1.50", nil},
		{"negative", "-10", "-10.00", nil},
		{"zero", "0", "0.00", nil},
		{"empty", "", "", money.ErrInvalidAmount},
		{"garbage", "abc", "", money.ErrInvalidAmount},
		{"too many decimals", "1.005", "", money.ErrInvalidDecimalPlaces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(money.Decimals))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "R$ 1000.00", money.Format(decimal.NewFromInt(1000)))
	assert.Equal(t, "R$ 0.50", money.Format(decimal.RequireFromString("0.5")))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { money.MustParse("nope") })
	assert.NotPanics(t, func() { money.MustParse("1.25") })
}

func TestCheckDecimals(t *testing.T) {
	assert.NoError(t, money.CheckDecimals(decimal.RequireFromString("10.25")))
	assert.NoError(t, money.CheckDecimals(decimal.RequireFromString("10.2500")))
	assert.ErrorIs(t, money.CheckDecimals(decimal.RequireFromString("0.004")), money.ErrInvalidDecimalPlaces)
	assert.ErrorIs(t, money.CheckDecimals(decimal.RequireFromString("500.004")), money.ErrInvalidDecimalPlaces)
}

func TestIsPositive(t *testing.T) {
	assert.True(t, money.IsPositive(money.MustParse("0.01")))
	assert.False(t, money.IsPositive(decimal.Zero))
	assert.False(t, money.IsPositive(money.MustParse("-1")))
}
