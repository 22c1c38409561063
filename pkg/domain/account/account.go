package account

import (
	"errors"
	"iter"
	"sync"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/common"
	"github.com/shopspring/decimal"
)

// DefaultAgency is the branch code assigned when none is configured.
const DefaultAgency = "0001"

// Account is a balance-bearing entity owned by exactly one customer.
// It acts as an aggregate root: the balance and the history only change
// together, through a registered Transaction.
//
// Invariants:
//   - Number, Agency and CustomerID never change after Build.
//   - The balance can never be negative.
//   - The balance equals the sum of deposits minus the sum of withdrawals in the history.
//   - Validate-then-apply is serialized by a per-account mutex.
type Account struct {
	Number     int
	Agency     string
	CustomerID string // tax id of the owner; a reference, not ownership
	CreatedAt  time.Time

	mu        sync.Mutex
	balance   decimal.Decimal
	history   History
	limits    Limits
	clock     common.Clock
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	number     int
	agency     string
	customerID string
	limits     Limits
	clock      common.Clock
}

// New creates a new Builder with sensible defaults: the default agency, the
// default limits and the wall clock.
func New() *Builder {
	return &Builder{
		agency: DefaultAgency,
		limits: DefaultLimits,
		clock:  time.Now,
	}
}

// WithNumber sets the account number. Numbers are issued by the registry.
func (b *Builder) WithNumber(number int) *Builder {
	b.number = number
	return b
}

// WithAgency sets the branch code.
func (b *Builder) WithAgency(agency string) *Builder {
	b.agency = agency
	return b
}

// WithCustomerID sets the owner's tax id. This is a mandatory field.
func (b *Builder) WithCustomerID(customerID string) *Builder {
	b.customerID = customerID
	return b
}

// WithLimits overrides the withdrawal policy.
func (b *Builder) WithLimits(limits Limits) *Builder {
	b.limits = limits
	return b
}

// WithClock sets the time source used to stamp transactions.
func (b *Builder) WithClock(clock common.Clock) *Builder {
	b.clock = clock
	return b
}

// Build validates the collected fields and returns an open account with a zero balance.
func (b *Builder) Build() (*Account, error) {
	if b.number <= 0 {
		return nil, errors.New("account number must be positive")
	}
	if b.customerID == "" {
		return nil, errors.New("customerID is required")
	}
	if b.agency == "" {
		return nil, errors.New("agency is required")
	}
	if b.limits.PerWithdrawal.IsNegative() || b.limits.DailyWithdrawals < 0 {
		return nil, errors.New("withdrawal limits cannot be negative")
	}
	if b.clock == nil {
		b.clock = time.Now
	}
	now := b.clock()
	return &Account{
		Number:     b.number,
		Agency:     b.agency,
		CustomerID: b.customerID,
		CreatedAt:  now,
		balance:    decimal.Zero,
		limits:     b.limits,
		clock:      b.clock,
	}, nil
}

// Deposit adds amount to the balance and records the deposit.
// It returns the new balance, or ErrInvalidAmount if amount is not positive.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	return NewDeposit(amount, a.clock()).Register(a)
}

// Withdraw removes amount from the balance and records the withdrawal.
// It returns the new balance, or one of ErrInvalidAmount, ErrInsufficientFunds,
// ErrExceedsPerTransactionLimit, ErrDailyLimitReached.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	return NewWithdrawal(amount, a.clock()).Register(a)
}

// apply is the single place where the balance changes.
func (a *Account) apply(t Transaction) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := t.Validate(a.balance, a.limits, a.history.WithdrawalsOn(t.Timestamp)); err != nil {
		return a.balance, err
	}
	a.balance = a.balance.Add(t.Signed())
	a.history.Append(t)
	return a.balance, nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Limits returns the withdrawal policy of the account.
func (a *Account) Limits() Limits {
	return a.limits
}

// History returns a snapshot of the account history. Later transactions do
// not show up in the snapshot.
func (a *Account) History() *History {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.clone()
}

// WithdrawalsToday returns the number of withdrawals recorded on the current calendar day.
func (a *Account) WithdrawalsToday() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.WithdrawalsOn(a.clock())
}

// Report returns a lazy view of the transactions matching pred, taken over a
// snapshot of the history. A nil pred yields everything.
func (a *Account) Report(pred Predicate) iter.Seq[Transaction] {
	return a.History().Filter(pred)
}

// StatementEntry is one line of a statement.
type StatementEntry struct {
	Timestamp time.Time
	Kind      Kind
	Amount    decimal.Decimal
}

// Statement is the ordered list of an account's transactions plus its balance.
type Statement struct {
	Number      int
	Agency      string
	CustomerID  string
	Entries     []StatementEntry
	Balance     decimal.Decimal
	GeneratedAt time.Time
}

// Statement builds a statement from the history. It has no side effects.
func (a *Account) Statement() Statement {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries := make([]StatementEntry, 0, a.history.Len())
	for t := range a.history.All() {
		entries = append(entries, StatementEntry{
			Timestamp: t.Timestamp,
			Kind:      t.Kind,
			Amount:    t.Amount,
		})
	}
	return Statement{
		Number:      a.Number,
		Agency:      a.Agency,
		CustomerID:  a.CustomerID,
		Entries:     entries,
		Balance:     a.balance,
		GeneratedAt: a.clock(),
	}
}
