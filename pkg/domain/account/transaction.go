package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/minibank/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies the variant of a Transaction. The set is closed.
type Kind string

// Transaction kinds.
const (
	KindDeposit    Kind = "DEPOSIT"
	KindWithdrawal Kind = "WITHDRAWAL"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindDeposit || k == KindWithdrawal
}

func (k Kind) String() string { return string(k) }

// ParseKind accepts the menu shortcuts (D, S, W) and the full kind names, case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "D", string(KindDeposit):
		return KindDeposit, nil
	case "S", "W", string(KindWithdrawal):
		return KindWithdrawal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Limits are the withdrawal policy applied by an account.
type Limits struct {
	// PerWithdrawal is the maximum amount of a single withdrawal.
	PerWithdrawal decimal.Decimal
	// DailyWithdrawals is the maximum number of withdrawals per calendar day.
	DailyWithdrawals int
}

// DefaultLimits is the policy used when an account is built without explicit limits.
var DefaultLimits = Limits{
	PerWithdrawal:    decimal.NewFromInt(500),
	DailyWithdrawals: 3,
}

// Transaction is a single deposit or withdrawal. It is a value object: once
// created nothing about it changes, and it only reaches a History through Register.
type Transaction struct {
	ID        uuid.UUID
	Kind      Kind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// NewDeposit creates a deposit of amount stamped at the given time.
func NewDeposit(amount decimal.Decimal, at time.Time) Transaction {
	return newTransaction(KindDeposit, amount, at)
}

// NewWithdrawal creates a withdrawal of amount stamped at the given time.
func NewWithdrawal(amount decimal.Decimal, at time.Time) Transaction {
	return newTransaction(KindWithdrawal, amount, at)
}

func newTransaction(kind Kind, amount decimal.Decimal, at time.Time) Transaction {
	return Transaction{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: at,
	}
}

// Validate checks the transaction against an account state without mutating anything.
// Withdrawal checks run in a fixed order and the first unmet condition is returned:
// amount, balance, per-withdrawal limit, daily count. Amounts with more than
// money.Decimals places are invalid; they are never rounded.
func (t Transaction) Validate(balance decimal.Decimal, limits Limits, withdrawalsToday int) error {
	if !money.IsPositive(t.Amount) {
		return ErrInvalidAmount
	}
	if err := money.CheckDecimals(t.Amount); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	switch t.Kind {
	case KindDeposit:
		return nil
	case KindWithdrawal:
		if t.Amount.GreaterThan(balance) {
			return ErrInsufficientFunds
		}
		if t.Amount.GreaterThan(limits.PerWithdrawal) {
			return fmt.Errorf("%w of %s", ErrExceedsPerTransactionLimit, money.Format(limits.PerWithdrawal))
		}
		if withdrawalsToday >= limits.DailyWithdrawals {
			return fmt.Errorf("%w (%d per day)", ErrDailyLimitReached, limits.DailyWithdrawals)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, t.Kind)
	}
}

// Register validates the transaction against onto and, on success, applies it:
// the balance moves by the signed amount and the transaction is appended to the
// account history. It returns the resulting balance.
func (t Transaction) Register(onto *Account) (decimal.Decimal, error) {
	if onto == nil {
		return decimal.Zero, ErrNilAccount
	}
	return onto.apply(t)
}

// Signed returns the effect of the transaction on a balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
