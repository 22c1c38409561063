package bank

import (
	"errors"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/customer"
	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/pkg/money"
)

// Failure reasons reported to the interaction layer and recorded on audit events.
const (
	ReasonInvalidAmount              = "InvalidAmount"
	ReasonInsufficientFunds          = "InsufficientFunds"
	ReasonExceedsPerTransactionLimit = "ExceedsPerTransactionLimit"
	ReasonDailyLimitReached          = "DailyLimitReached"
	ReasonDuplicateCustomer          = "DuplicateCustomer"
	ReasonNotFound                   = "NotFound"
	ReasonValidation                 = "Validation"
	ReasonUnknown                    = "Unknown"
)

// Reason maps an error returned by the service to its failure reason.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, account.ErrInvalidAmount),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrInvalidDecimalPlaces):
		return ReasonInvalidAmount
	case errors.Is(err, account.ErrInsufficientFunds):
		return ReasonInsufficientFunds
	case errors.Is(err, account.ErrExceedsPerTransactionLimit):
		return ReasonExceedsPerTransactionLimit
	case errors.Is(err, account.ErrDailyLimitReached):
		return ReasonDailyLimitReached
	case errors.Is(err, customer.ErrDuplicateCustomer):
		return ReasonDuplicateCustomer
	case errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, account.ErrAccountNotFound):
		return ReasonNotFound
	case errors.Is(err, dto.ErrValidation),
		errors.Is(err, customer.ErrTaxIDRequired):
		return ReasonValidation
	default:
		return ReasonUnknown
	}
}
