package dto

import (
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRead represents a read-optimized view of a transaction.
type TransactionRead struct {
	ID        uuid.UUID       `json:"id"`
	Kind      account.Kind    `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewTransactionRead maps a domain transaction.
func NewTransactionRead(t account.Transaction) TransactionRead {
	return TransactionRead{ID: t.ID, Kind: t.Kind, Amount: t.Amount, Timestamp: t.Timestamp}
}

// OperationResult is returned by deposits and withdrawals.
type OperationResult struct {
	Account AccountRead     `json:"account"`
	Kind    account.Kind    `json:"kind"`
	Amount  decimal.Decimal `json:"amount"`
	Balance decimal.Decimal `json:"balance"`
}

// StatementEntry is one statement line.
type StatementEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Kind      account.Kind    `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
}

// StatementRead is an account statement ready for display.
type StatementRead struct {
	Account     AccountRead      `json:"account"`
	Entries     []StatementEntry `json:"entries"`
	Balance     decimal.Decimal  `json:"balance"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// NewStatementRead maps a domain statement.
func NewStatementRead(st account.Statement, acc AccountRead) StatementRead {
	entries := make([]StatementEntry, 0, len(st.Entries))
	for _, e := range st.Entries {
		entries = append(entries, StatementEntry{Timestamp: e.Timestamp, Kind: e.Kind, Amount: e.Amount})
	}
	acc.Balance = st.Balance
	return StatementRead{
		Account:     acc,
		Entries:     entries,
		Balance:     st.Balance,
		GeneratedAt: st.GeneratedAt,
	}
}
