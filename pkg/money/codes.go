package money

// Code represents a currency code (e.g., "BRL").
type Code string

// Common currency codes
const (
	BRL Code = "BRL" // Brazilian Real
)

// Symbol returns the display symbol for the currency code.
func (c Code) Symbol() string {
	switch c {
	case BRL:
		return "R$"
	default:
		return string(c)
	}
}
