package customer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/common"
)

var (
	// ErrCustomerNotFound is returned when a customer cannot be found in the
	// registry.
	ErrCustomerNotFound = fmt.Errorf("customer %w", common.ErrNotFound)
	// ErrDuplicateCustomer is returned when registering a tax id that is
	// already taken.
	ErrDuplicateCustomer = fmt.Errorf("customer %w", common.ErrAlreadyExists)
	// ErrTaxIDRequired is returned when a profile has no tax id.
	ErrTaxIDRequired = errors.New("tax id is required")
)

// Profile is the identity and contact data captured at registration.
// Only TaxID is checked; the other fields are free text.
type Profile struct {
	TaxID     string `json:"tax_id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
}

// NumberIssuer hands out account numbers. The registry implements it.
type NumberIssuer interface {
	NextAccountNumber() int
}

// Customer represents a registered individual and the accounts they own.
type Customer struct {
	profile   Profile
	createdAt time.Time

	mu       sync.RWMutex
	accounts []*account.Account
}

// New creates a Customer from a profile. The tax id is trimmed and must not be empty.
func New(p Profile) (*Customer, error) {
	p.TaxID = strings.TrimSpace(p.TaxID)
	if p.TaxID == "" {
		return nil, ErrTaxIDRequired
	}
	return &Customer{
		profile:   p,
		createdAt: time.Now().UTC(),
	}, nil
}

// TaxID returns the customer's unique identifier.
func (c *Customer) TaxID() string { return c.profile.TaxID }

// Name returns the customer's name.
func (c *Customer) Name() string { return c.profile.Name }

// Profile returns a copy of the registration data.
func (c *Customer) Profile() Profile { return c.profile }

// CreatedAt returns when the customer was registered.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// OpenAccount asks issuer for a number, builds the account and appends it to
// the customer's collection. opts customize the account builder (agency,
// limits, clock).
func (c *Customer) OpenAccount(issuer NumberIssuer, opts ...func(*account.Builder)) (*account.Account, error) {
	if issuer == nil {
		return nil, errors.New("number issuer is required")
	}
	b := account.New().WithCustomerID(c.profile.TaxID)
	for _, opt := range opts {
		opt(b)
	}
	acc, err := b.WithNumber(issuer.NextAccountNumber()).Build()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.accounts = append(c.accounts, acc)
	c.mu.Unlock()
	return acc, nil
}

// Accounts returns the customer's accounts in creation order.
func (c *Customer) Accounts() []*account.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*account.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Account returns the customer's account with the given number.
func (c *Customer) Account(number int) (*account.Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, acc := range c.accounts {
		if acc.Number == number {
			return acc, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", account.ErrAccountNotFound, number)
}

// String renders the customer as "Name (tax id: 123)".
func (c *Customer) String() string {
	return fmt.Sprintf("%s (tax id: %s)", c.profile.Name, c.profile.TaxID)
}
