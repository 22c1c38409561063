package cli

import (
	"errors"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/customer"
	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/pkg/money"
)

// Message turns an operation error into the text shown to the user.
func Message(err error) string {
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound):
		return "Customer not found!"
	case errors.Is(err, account.ErrAccountNotFound):
		return "Account not found!"
	case errors.Is(err, errNoAccounts):
		return "Customer has no accounts!"
	case errors.Is(err, errInvalidChoice):
		return "Invalid account choice!"
	case errors.Is(err, customer.ErrDuplicateCustomer):
		return "A customer with this tax id already exists!"
	case errors.Is(err, money.ErrInvalidDecimalPlaces):
		return "Amounts accept at most 2 decimal places!"
	case errors.Is(err, account.ErrInvalidAmount), errors.Is(err, money.ErrInvalidAmount):
		return "Invalid amount!"
	case errors.Is(err, account.ErrInsufficientFunds):
		return "Operation failed! Insufficient balance."
	case errors.Is(err, account.ErrExceedsPerTransactionLimit):
		return "Operation failed! Amount exceeds the withdrawal limit."
	case errors.Is(err, account.ErrDailyLimitReached):
		return "Operation failed! Maximum number of withdrawals for today reached."
	case errors.Is(err, customer.ErrTaxIDRequired), errors.Is(err, dto.ErrValidation):
		return "Invalid customer data: " + err.Error()
	default:
		return "Operation failed: " + err.Error()
	}
}
