package account

import (
	"errors"
	"fmt"

	"github.com/amirasaad/minibank/pkg/domain/common"
)

var (
	// ErrInvalidAmount is returned when a transaction amount is zero or negative.
	ErrInvalidAmount = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrExceedsPerTransactionLimit is returned when a single withdrawal is above the per-withdrawal cap.
	ErrExceedsPerTransactionLimit = errors.New("withdrawal exceeds per-transaction limit")

	// ErrDailyLimitReached is returned when the account already used all withdrawals allowed for the day.
	ErrDailyLimitReached = errors.New("daily withdrawal limit reached")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("account %w", common.ErrNotFound)

	// ErrNilAccount is returned when a transaction is registered onto a nil account.
	ErrNilAccount = errors.New("nil account")

	// ErrUnknownKind is returned when a transaction kind cannot be parsed.
	ErrUnknownKind = errors.New("unknown transaction kind")
)
