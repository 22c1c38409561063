// Package registry is the bank's in-memory directory: customers by tax id,
// accounts in opening order, and the account number counter.
//
// A Registry is constructed explicitly and passed to whoever needs it; there
// is no package-level instance. All state lives for the lifetime of the value.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/common"
	"github.com/amirasaad/minibank/pkg/domain/customer"
	"github.com/shopspring/decimal"
)

// Option configures a Registry.
type Option func(*Registry)

// WithAgency sets the branch code of every account opened through the registry.
func WithAgency(agency string) Option {
	return func(r *Registry) { r.agency = agency }
}

// WithFirstAccountNumber sets the number given to the first account.
func WithFirstAccountNumber(n int) Option {
	return func(r *Registry) { r.nextNumber = n }
}

// WithLimits sets the withdrawal policy of every account opened through the registry.
func WithLimits(limits account.Limits) Option {
	return func(r *Registry) { r.limits = limits }
}

// WithClock sets the time source handed to new accounts.
func WithClock(clock common.Clock) Option {
	return func(r *Registry) { r.clock = clock }
}

// CustomerSummary is a read-only snapshot of a customer for listings.
type CustomerSummary struct {
	TaxID    string
	Name     string
	Accounts []AccountSummary
}

// AccountSummary is a read-only snapshot of an account for listings.
type AccountSummary struct {
	Agency  string
	Number  int
	TaxID   string
	Holder  string
	Balance decimal.Decimal
}

// Registry is a thread-safe directory of customers and accounts.
type Registry struct {
	mu         sync.RWMutex
	customers  map[string]*customer.Customer
	order      []*customer.Customer
	nextNumber int

	agency string
	limits account.Limits
	clock  common.Clock
}

// New creates an empty registry. Account numbers start at 1 unless configured otherwise.
func New(opts ...Option) *Registry {
	r := &Registry{
		customers:  make(map[string]*customer.Customer),
		nextNumber: 1,
		agency:     account.DefaultAgency,
		limits:     account.DefaultLimits,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.nextNumber < 1 {
		r.nextNumber = 1
	}
	return r
}

// RegisterCustomer adds a customer. It fails with customer.ErrDuplicateCustomer
// when the tax id is already registered, leaving the existing customer as is.
func (r *Registry) RegisterCustomer(p customer.Profile) (*customer.Customer, error) {
	c, err := customer.New(p)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[c.TaxID()]; exists {
		return nil, fmt.Errorf("%w: %s", customer.ErrDuplicateCustomer, c.TaxID())
	}
	r.customers[c.TaxID()] = c
	r.order = append(r.order, c)
	return c, nil
}

// FindCustomer returns the customer with the given tax id. Surrounding
// whitespace is ignored, as it is on registration.
func (r *Registry) FindCustomer(taxID string) (*customer.Customer, error) {
	taxID = strings.TrimSpace(taxID)
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[taxID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", customer.ErrCustomerNotFound, taxID)
	}
	return c, nil
}

// NextAccountNumber returns a number never returned before by this registry.
// Numbers are strictly increasing.
func (r *Registry) NextAccountNumber() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.issueNumber()
}

// issueNumber must be called with r.mu held for writing.
func (r *Registry) issueNumber() int {
	n := r.nextNumber
	r.nextNumber++
	return n
}

// lockedIssuer lets a customer draw a number while OpenAccount holds the lock.
type lockedIssuer struct{ r *Registry }

func (l lockedIssuer) NextAccountNumber() int { return l.r.issueNumber() }

// OpenAccount opens a new account for the customer with the given tax id.
func (r *Registry) OpenAccount(taxID string) (*account.Account, error) {
	taxID = strings.TrimSpace(taxID)
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.customers[taxID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", customer.ErrCustomerNotFound, taxID)
	}
	acc, err := c.OpenAccount(lockedIssuer{r}, func(b *account.Builder) {
		b.WithAgency(r.agency).WithLimits(r.limits).WithClock(r.clock)
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// FindAccount returns the account with the given number if it belongs to the
// customer with the given tax id.
func (r *Registry) FindAccount(taxID string, number int) (*account.Account, error) {
	c, err := r.FindCustomer(taxID)
	if err != nil {
		return nil, err
	}
	return c.Account(number)
}

// ListCustomers returns a snapshot of all customers in registration order.
func (r *Registry) ListCustomers() []CustomerSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CustomerSummary, 0, len(r.order))
	for _, c := range r.order {
		s := CustomerSummary{TaxID: c.TaxID(), Name: c.Name()}
		for _, acc := range c.Accounts() {
			s.Accounts = append(s.Accounts, summarize(acc, c))
		}
		out = append(out, s)
	}
	return out
}

// ListAccounts returns a snapshot of all accounts in opening order. Accounts
// are collected from their owners, so accounts opened directly through
// customer.Customer.OpenAccount are listed too. Numbers are issued strictly
// increasing, which makes number order the opening order.
func (r *Registry) ListAccounts() []AccountSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []AccountSummary
	for _, c := range r.order {
		for _, acc := range c.Accounts() {
			out = append(out, summarize(acc, c))
		}
	}
	slices.SortFunc(out, func(a, b AccountSummary) int { return cmp.Compare(a.Number, b.Number) })
	if out == nil {
		out = []AccountSummary{}
	}
	return out
}

// Count returns the number of registered customers and opened accounts.
func (r *Registry) Count() (customers, accounts int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.order {
		accounts += len(c.Accounts())
	}
	return len(r.order), accounts
}

func summarize(acc *account.Account, owner *customer.Customer) AccountSummary {
	s := AccountSummary{
		Agency:  acc.Agency,
		Number:  acc.Number,
		TaxID:   acc.CustomerID,
		Balance: acc.Balance(),
	}
	if owner != nil {
		s.Holder = owner.Name()
	}
	return s
}

// Ensure Registry can issue account numbers to customers.
var _ customer.NumberIssuer = (*Registry)(nil)
