// Package bank provides the operations the interactive session calls:
// registering customers, opening accounts, deposits, withdrawals, statements
// and reports.
//
// The service resolves customers and accounts through the registry and
// delegates every rule to the domain. Mutating operations run inside the
// auditor so each outcome is logged and published as an audit event.
package bank

import (
	"context"
	"log/slog"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/decorator"
	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/customer"
	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/pkg/registry"
	"github.com/shopspring/decimal"
)

// Service provides business logic for customer and account operations.
type Service struct {
	registry *registry.Registry
	auditor  decorator.Auditor
	logger   *slog.Logger
	name     string
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	auditor := deps.Auditor
	if auditor == nil {
		auditor = decorator.NewEventAuditor(deps.EventBus, logger, Reason)
	}
	reg := deps.Registry
	if reg == nil {
		reg = registry.New()
	}
	name := "Bank"
	if deps.Config != nil && deps.Config.Bank != nil {
		name = deps.Config.Bank.Name
	}
	return &Service{
		registry: reg,
		auditor:  auditor,
		logger:   logger,
		name:     name,
	}
}

// Name returns the bank's display name.
func (s *Service) Name() string { return s.name }

// RegisterCustomer validates the input and registers a new customer.
func (s *Service) RegisterCustomer(ctx context.Context, in dto.CustomerCreate) (out dto.CustomerRead, err error) {
	in = in.Normalize()
	err = s.auditor.Execute(ctx, "Registry.RegisterCustomer", []any{"tax_id", in.TaxID}, func() error {
		if err := in.Validate(); err != nil {
			return err
		}
		c, err := s.registry.RegisterCustomer(in.ToProfile())
		if err != nil {
			return err
		}
		out = dto.NewCustomerRead(c)
		return nil
	})
	return
}

// OpenAccount opens a new account for the customer with the given tax id.
func (s *Service) OpenAccount(ctx context.Context, taxID string) (out dto.AccountRead, err error) {
	err = s.auditor.Execute(ctx, "Registry.OpenAccount", []any{"tax_id", taxID}, func() error {
		c, err := s.registry.FindCustomer(taxID)
		if err != nil {
			return err
		}
		acc, err := s.registry.OpenAccount(taxID)
		if err != nil {
			return err
		}
		out = dto.NewAccountRead(acc, c.Name())
		return nil
	})
	return
}

// Customer returns the customer with the given tax id and its accounts.
func (s *Service) Customer(_ context.Context, taxID string) (dto.CustomerRead, error) {
	c, err := s.registry.FindCustomer(taxID)
	if err != nil {
		return dto.CustomerRead{}, err
	}
	return dto.NewCustomerRead(c), nil
}

// Accounts returns the customer's accounts in creation order.
func (s *Service) Accounts(ctx context.Context, taxID string) ([]dto.AccountRead, error) {
	c, err := s.Customer(ctx, taxID)
	if err != nil {
		return nil, err
	}
	return c.Accounts, nil
}

// Deposit adds amount to the customer's account.
func (s *Service) Deposit(ctx context.Context, taxID string, number int, amount decimal.Decimal) (dto.OperationResult, error) {
	return s.operate(ctx, "Account.Deposit", account.KindDeposit, taxID, number, amount)
}

// Withdraw removes amount from the customer's account, subject to the account's limits.
func (s *Service) Withdraw(ctx context.Context, taxID string, number int, amount decimal.Decimal) (dto.OperationResult, error) {
	return s.operate(ctx, "Account.Withdraw", account.KindWithdrawal, taxID, number, amount)
}

func (s *Service) operate(
	ctx context.Context,
	name string,
	kind account.Kind,
	taxID string,
	number int,
	amount decimal.Decimal,
) (out dto.OperationResult, err error) {
	attrs := []any{"tax_id", taxID, "account", number, "amount", amount.StringFixed(2)}
	err = s.auditor.Execute(ctx, name, attrs, func() error {
		c, acc, err := s.resolve(taxID, number)
		if err != nil {
			return err
		}
		var balance decimal.Decimal
		if kind == account.KindDeposit {
			balance, err = acc.Deposit(amount)
		} else {
			balance, err = acc.Withdraw(amount)
		}
		if err != nil {
			return err
		}
		out = dto.OperationResult{
			Account: dto.NewAccountRead(acc, c.Name()),
			Kind:    kind,
			Amount:  amount,
			Balance: balance,
		}
		out.Account.Balance = balance
		return nil
	})
	return
}

// Statement returns every transaction of the account in order plus its balance.
func (s *Service) Statement(_ context.Context, taxID string, number int) (dto.StatementRead, error) {
	c, acc, err := s.resolve(taxID, number)
	if err != nil {
		return dto.StatementRead{}, err
	}
	return dto.NewStatementRead(acc.Statement(), dto.NewAccountRead(acc, c.Name())), nil
}

// Report returns the account's transactions, optionally restricted to one kind.
// A nil kind returns everything.
func (s *Service) Report(_ context.Context, taxID string, number int, kind *account.Kind) ([]dto.TransactionRead, error) {
	_, acc, err := s.resolve(taxID, number)
	if err != nil {
		return nil, err
	}
	var filter account.Predicate
	if kind != nil {
		filter = account.OfKind(*kind)
	}
	out := make([]dto.TransactionRead, 0)
	for t := range acc.Report(filter) {
		out = append(out, dto.NewTransactionRead(t))
	}
	return out, nil
}

// ListCustomers returns all customers in registration order.
func (s *Service) ListCustomers(_ context.Context) []dto.CustomerRead {
	summaries := s.registry.ListCustomers()
	out := make([]dto.CustomerRead, 0, len(summaries))
	for _, cs := range summaries {
		cr := dto.CustomerRead{TaxID: cs.TaxID, Name: cs.Name}
		for _, as := range cs.Accounts {
			cr.Accounts = append(cr.Accounts, dto.AccountReadFromSummary(as))
		}
		out = append(out, cr)
	}
	return out
}

// ListAccounts returns all accounts in opening order.
func (s *Service) ListAccounts(_ context.Context) []dto.AccountRead {
	summaries := s.registry.ListAccounts()
	out := make([]dto.AccountRead, 0, len(summaries))
	for _, as := range summaries {
		out = append(out, dto.AccountReadFromSummary(as))
	}
	return out
}

func (s *Service) resolve(taxID string, number int) (*customer.Customer, *account.Account, error) {
	c, err := s.registry.FindCustomer(taxID)
	if err != nil {
		return nil, nil, err
	}
	acc, err := c.Account(number)
	if err != nil {
		return nil, nil, err
	}
	return c, acc, nil
}
