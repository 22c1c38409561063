package account

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// Predicate selects transactions from a History.
type Predicate func(Transaction) bool

// OfKind matches transactions of the given kind.
func OfKind(kind Kind) Predicate {
	return func(t Transaction) bool { return t.Kind == kind }
}

// OnDay matches transactions stamped on the same calendar day as day,
// evaluated in day's location.
func OnDay(day time.Time) Predicate {
	y, m, d := day.Date()
	loc := day.Location()
	return func(t Transaction) bool {
		ty, tm, td := t.Timestamp.In(loc).Date()
		return ty == y && tm == m && td == d
	}
}

// And matches when every predicate matches. With no predicates it matches everything.
func And(preds ...Predicate) Predicate {
	return func(t Transaction) bool {
		for _, p := range preds {
			if p != nil && !p(t) {
				return false
			}
		}
		return true
	}
}

// History is the append-only, chronological record of one account's transactions.
// The zero value is an empty history ready to use. History is not safe for
// concurrent use; the owning Account serializes access.
type History struct {
	entries []Transaction
}

// Append records t at the end of the history.
func (h *History) Append(t Transaction) {
	h.entries = append(h.entries, t)
}

// Len returns the number of recorded transactions.
func (h *History) Len() int {
	return len(h.entries)
}

// All yields every transaction in insertion order.
func (h *History) All() iter.Seq[Transaction] {
	return h.Filter(nil)
}

// Filter returns a lazy sequence of the transactions matching pred, in
// insertion order. A nil pred matches everything. The sequence can be ranged
// over any number of times and never modifies the history.
func (h *History) Filter(pred Predicate) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, t := range h.entries {
			if pred != nil && !pred(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Count returns how many transactions match pred.
func (h *History) Count(pred Predicate) int {
	n := 0
	for range h.Filter(pred) {
		n++
	}
	return n
}

// WithdrawalsOn returns the number of withdrawals recorded on day's calendar day.
func (h *History) WithdrawalsOn(day time.Time) int {
	return h.Count(And(OfKind(KindWithdrawal), OnDay(day)))
}

// Totals returns the summed deposit and withdrawal amounts.
func (h *History) Totals() (deposits, withdrawals decimal.Decimal) {
	deposits, withdrawals = decimal.Zero, decimal.Zero
	for t := range h.All() {
		switch t.Kind {
		case KindDeposit:
			deposits = deposits.Add(t.Amount)
		case KindWithdrawal:
			withdrawals = withdrawals.Add(t.Amount)
		}
	}
	return deposits, withdrawals
}

// clone returns a copy that shares no backing array with h.
func (h *History) clone() *History {
	entries := make([]Transaction, len(h.entries))
	copy(entries, h.entries)
	return &History{entries: entries}
}
