package dto

import (
	"strings"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/customer"
)

// CustomerCreate represents the data needed to register a new customer.
type CustomerCreate struct {
	TaxID     string `json:"tax_id" validate:"required,max=32"`
	Name      string `json:"name" validate:"max=120"`
	BirthDate string `json:"birth_date,omitempty" validate:"max=32"`
	Address   string `json:"address,omitempty" validate:"max=255"`
}

// Normalize trims surrounding whitespace from every field.
func (c CustomerCreate) Normalize() CustomerCreate {
	return CustomerCreate{
		TaxID:     strings.TrimSpace(c.TaxID),
		Name:      strings.TrimSpace(c.Name),
		BirthDate: strings.TrimSpace(c.BirthDate),
		Address:   strings.TrimSpace(c.Address),
	}
}

// Validate normalizes and validates the input.
func (c CustomerCreate) Validate() error {
	return Validate(c.Normalize())
}

// ToProfile converts the input to a domain profile.
func (c CustomerCreate) ToProfile() customer.Profile {
	n := c.Normalize()
	return customer.Profile{
		TaxID:     n.TaxID,
		Name:      n.Name,
		BirthDate: n.BirthDate,
		Address:   n.Address,
	}
}

// CustomerRead represents a read-optimized view of a customer.
type CustomerRead struct {
	TaxID     string        `json:"tax_id"`
	Name      string        `json:"name"`
	BirthDate string        `json:"birth_date,omitempty"`
	Address   string        `json:"address,omitempty"`
	Accounts  []AccountRead `json:"accounts,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewCustomerRead maps a domain customer, including its accounts.
func NewCustomerRead(c *customer.Customer) CustomerRead {
	p := c.Profile()
	out := CustomerRead{
		TaxID:     p.TaxID,
		Name:      p.Name,
		BirthDate: p.BirthDate,
		Address:   p.Address,
		CreatedAt: c.CreatedAt(),
	}
	for _, acc := range c.Accounts() {
		out.Accounts = append(out.Accounts, NewAccountRead(acc, p.Name))
	}
	return out
}
