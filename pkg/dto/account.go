package dto

import (
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/registry"
	"github.com/shopspring/decimal"
)

// AccountRead represents a read-optimized view of an account.
type AccountRead struct {
	Agency    string          `json:"agency"`
	Number    int             `json:"number"`
	TaxID     string          `json:"tax_id"`
	Holder    string          `json:"holder"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}

// NewAccountRead maps a domain account. holder is the owner's display name.
func NewAccountRead(acc *account.Account, holder string) AccountRead {
	return AccountRead{
		Agency:    acc.Agency,
		Number:    acc.Number,
		TaxID:     acc.CustomerID,
		Holder:    holder,
		Balance:   acc.Balance(),
		CreatedAt: acc.CreatedAt,
	}
}

// AccountReadFromSummary maps a registry listing entry.
func AccountReadFromSummary(s registry.AccountSummary) AccountRead {
	return AccountRead{
		Agency:  s.Agency,
		Number:  s.Number,
		TaxID:   s.TaxID,
		Holder:  s.Holder,
		Balance: s.Balance,
	}
}
