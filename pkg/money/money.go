// Package money provides helpers for handling monetary values.
//
// Amounts are carried as decimal.Decimal so that arithmetic never loses
// precision. This package only parses, rounds and formats them.
// Invariants:
//   - Amounts produced by Parse never carry more than Decimals places.
//   - Format always renders exactly Decimals places.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of decimal places used for every amount.
const Decimals int32 = 2

// DefaultCode is the currency every account is held in.
var DefaultCode = BRL

// Parse converts user input such as "1000", "1000.50", "1000,50" or
// "R$ 12,30" into a decimal amount.
// Parse does not check the sign: rejecting non-positive amounts is the
// responsibility of the transaction that receives them.
func Parse(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, DefaultCode.Symbol())
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	if strings.Count(raw, ",") == 1 && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if err := CheckDecimals(d); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidDecimalPlaces, s)
	}
	return Round(d), nil
}

// CheckDecimals returns ErrInvalidDecimalPlaces when d carries significant
// digits beyond Decimals places. Trailing zeros are fine.
func CheckDecimals(d decimal.Decimal) error {
	if !d.Equal(d.Truncate(Decimals)) {
		return ErrInvalidDecimalPlaces
	}
	return nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money.MustParse(%q): %v", s, err))
	}
	return d
}

// Round rounds an amount to the currency's decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Decimals)
}

// Format renders an amount with the currency symbol, e.g. "R$ 1000.00".
func Format(d decimal.Decimal) string {
	return DefaultCode.Symbol() + " " + d.StringFixed(Decimals)
}

// IsPositive reports whether d is strictly greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}
