package account_test

import (
	"testing"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]account.Kind{
		"d":          account.KindDeposit,
		"DEPOSIT":    account.KindDeposit,
		" s ":        account.KindWithdrawal,
		"w":          account.KindWithdrawal,
		"withdrawal": account.KindWithdrawal,
	} {
		got, err := account.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := account.ParseKind("x")
	assert.ErrorIs(t, err, account.ErrUnknownKind)
}

func TestTransactionValidateIsPure(t *testing.T) {
	t.Parallel()
	now := time.Now()
	tx := account.NewWithdrawal(amt("50"), now)

	assert.NoError(t, tx.Validate(amt("100"), account.DefaultLimits, 0))
	assert.ErrorIs(t, tx.Validate(amt("40"), account.DefaultLimits, 0), account.ErrInsufficientFunds)
	assert.ErrorIs(t, tx.Validate(amt("100"), account.DefaultLimits, 3), account.ErrDailyLimitReached)
	assert.Equal(t, "50.00", tx.Amount.StringFixed(2))
	assert.Equal(t, now, tx.Timestamp)
}

func TestTransactionKeepsAmountUnrounded(t *testing.T) {
	t.Parallel()
	tx := account.NewWithdrawal(decimal.RequireFromString("500.004"), time.Now())

	assert.Equal(t, "500.004", tx.Amount.String())
	err := tx.Validate(amt("1000"), account.DefaultLimits, 0)
	assert.ErrorIs(t, err, account.ErrInvalidAmount)
	assert.ErrorIs(t, err, money.ErrInvalidDecimalPlaces)
}

func TestTransactionSigned(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "12.00", account.NewDeposit(amt("12"), time.Now()).Signed().StringFixed(2))
	assert.Equal(t, "-12.00", account.NewWithdrawal(amt("12"), time.Now()).Signed().StringFixed(2))
}

func TestTransactionIDsAreUnique(t *testing.T) {
	t.Parallel()
	a := account.NewDeposit(amt("1"), time.Now())
	b := account.NewDeposit(amt("1"), time.Now())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUnknownKindIsRejected(t *testing.T) {
	t.Parallel()
	tx := account.Transaction{Kind: account.Kind("TRANSFER"), Amount: amt("1")}
	assert.ErrorIs(t, tx.Validate(amt("10"), account.DefaultLimits, 0), account.ErrUnknownKind)
	assert.False(t, tx.Kind.Valid())
}
