// Package cli implements the interactive menu-driven session of the bank.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/pkg/money"
	"github.com/amirasaad/minibank/pkg/render"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// Bank is the set of operations the session drives.
type Bank interface {
	Name() string
	RegisterCustomer(ctx context.Context, in dto.CustomerCreate) (dto.CustomerRead, error)
	OpenAccount(ctx context.Context, taxID string) (dto.AccountRead, error)
	Accounts(ctx context.Context, taxID string) ([]dto.AccountRead, error)
	Deposit(ctx context.Context, taxID string, number int, amount decimal.Decimal) (dto.OperationResult, error)
	Withdraw(ctx context.Context, taxID string, number int, amount decimal.Decimal) (dto.OperationResult, error)
	Statement(ctx context.Context, taxID string, number int) (dto.StatementRead, error)
	Report(ctx context.Context, taxID string, number int, kind *account.Kind) ([]dto.TransactionRead, error)
	ListCustomers(ctx context.Context) []dto.CustomerRead
	ListAccounts(ctx context.Context) []dto.AccountRead
}

// Menu options.
const (
	OptDeposit      = "D"
	OptWithdraw     = "S"
	OptStatement    = "E"
	OptNewCustomer  = "NU"
	OptNewAccount   = "NC"
	OptListAccounts = "LC"
	OptListCustomer = "LU"
	OptReport       = "R"
	OptQuit         = "Q"
)

var menuOptions = []render.MenuOption{
	{Key: OptDeposit, Label: "Deposit"},
	{Key: OptWithdraw, Label: "Withdraw"},
	{Key: OptStatement, Label: "Statement"},
	{Key: OptNewCustomer, Label: "New customer"},
	{Key: OptNewAccount, Label: "New account"},
	{Key: OptListAccounts, Label: "List accounts"},
	{Key: OptListCustomer, Label: "List customers"},
	{Key: OptReport, Label: "Transaction report"},
	{Key: OptQuit, Label: "Quit"},
}

var (
	errNoAccounts    = errors.New("customer has no accounts")
	errInvalidChoice = errors.New("invalid account choice")
)

// Session reads commands from an input and writes results to an output.
type Session struct {
	bank    Bank
	in      *bufio.Scanner
	out     io.Writer
	success *color.Color
	failure *color.Color
	prompt  *color.Color
}

// NewSession creates a session over the given input and output.
func NewSession(bank Bank, in io.Reader, out io.Writer) *Session {
	return &Session{
		bank:    bank,
		in:      bufio.NewScanner(in),
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		prompt:  color.New(color.FgCyan, color.Bold),
	}
}

// Run shows the menu until the user quits or the input ends.
// End of input is a clean exit; only read errors are returned.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprint(s.out, render.Banner("WELCOME TO "+strings.ToUpper(s.bank.Name())))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, "\n"+render.Menu(s.bank.Name()+" - MENU", menuOptions))
		opt, err := s.read("Choose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch strings.ToUpper(opt) {
		case OptDeposit:
			err = s.deposit(ctx)
		case OptWithdraw:
			err = s.withdraw(ctx)
		case OptStatement:
			err = s.statement(ctx)
		case OptNewCustomer:
			err = s.newCustomer(ctx)
		case OptNewAccount:
			err = s.newAccount(ctx)
		case OptListAccounts:
			fmt.Fprint(s.out, render.AccountList(s.bank.ListAccounts(ctx)))
		case OptListCustomer:
			fmt.Fprint(s.out, render.CustomerList(s.bank.ListCustomers(ctx)))
		case OptReport:
			err = s.report(ctx)
		case OptQuit:
			fmt.Fprint(s.out, "\n"+render.Banner("THANK YOU FOR USING OUR SYSTEM!"))
			return nil
		default:
			s.fail("Invalid option! Try again.")
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if isReadError(err) {
				return err
			}
			s.fail(Message(err))
		}
	}
}

func (s *Session) deposit(ctx context.Context) error {
	taxID, acc, err := s.selectAccount(ctx)
	if err != nil {
		return err
	}
	amount, err := s.readAmount("Deposit amount: R$ ")
	if err != nil {
		return err
	}
	res, err := s.bank.Deposit(ctx, taxID, acc.Number, amount)
	if err != nil {
		return err
	}
	s.ok(fmt.Sprintf("Deposit of %s completed. Balance: %s", money.Format(res.Amount), money.Format(res.Balance)))
	return nil
}

func (s *Session) withdraw(ctx context.Context) error {
	taxID, acc, err := s.selectAccount(ctx)
	if err != nil {
		return err
	}
	amount, err := s.readAmount("Withdrawal amount: R$ ")
	if err != nil {
		return err
	}
	res, err := s.bank.Withdraw(ctx, taxID, acc.Number, amount)
	if err != nil {
		return err
	}
	s.ok(fmt.Sprintf("Withdrawal of %s completed. Balance: %s", money.Format(res.Amount), money.Format(res.Balance)))
	return nil
}

func (s *Session) statement(ctx context.Context) error {
	taxID, acc, err := s.selectAccount(ctx)
	if err != nil {
		return err
	}
	st, err := s.bank.Statement(ctx, taxID, acc.Number)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "\n"+render.Statement(st))
	return nil
}

func (s *Session) newCustomer(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n--- NEW CUSTOMER ---")
	var in dto.CustomerCreate
	for _, field := range []struct {
		prompt string
		dst    *string
	}{
		{"Full name: ", &in.Name},
		{"Tax id (numbers only): ", &in.TaxID},
		{"Birth date (dd/mm/yyyy): ", &in.BirthDate},
		{"Address: ", &in.Address},
	} {
		v, err := s.read(field.prompt)
		if err != nil {
			return err
		}
		*field.dst = v
	}
	c, err := s.bank.RegisterCustomer(ctx, in)
	if err != nil {
		return err
	}
	s.ok(fmt.Sprintf("Customer %s created!", c.Name))
	return nil
}

func (s *Session) newAccount(ctx context.Context) error {
	taxID, err := s.read("Customer tax id: ")
	if err != nil {
		return err
	}
	acc, err := s.bank.OpenAccount(ctx, taxID)
	if err != nil {
		return err
	}
	s.ok(fmt.Sprintf("Account %d created!", acc.Number))
	return nil
}

func (s *Session) report(ctx context.Context) error {
	taxID, acc, err := s.selectAccount(ctx)
	if err != nil {
		return err
	}
	raw, err := s.read("Filter by kind? (D=Deposit, S=Withdrawal, Enter=All): ")
	if err != nil {
		return err
	}
	var kind *account.Kind
	if k, err := account.ParseKind(raw); err == nil {
		kind = &k
	}
	txs, err := s.bank.Report(ctx, taxID, acc.Number, kind)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "\n"+render.Report(acc, kind, txs))
	return nil
}

// selectAccount asks for the customer's tax id and, when the customer owns
// several accounts, for a 1-based choice among them.
func (s *Session) selectAccount(ctx context.Context) (string, dto.AccountRead, error) {
	taxID, err := s.read("Customer tax id: ")
	if err != nil {
		return "", dto.AccountRead{}, err
	}
	accounts, err := s.bank.Accounts(ctx, taxID)
	if err != nil {
		return "", dto.AccountRead{}, err
	}
	switch len(accounts) {
	case 0:
		return "", dto.AccountRead{}, errNoAccounts
	case 1:
		return taxID, accounts[0], nil
	}

	fmt.Fprint(s.out, "\n"+render.AccountChoices(accounts))
	raw, err := s.read("Choose the account: ")
	if err != nil {
		return "", dto.AccountRead{}, err
	}
	choice, err := strconv.Atoi(raw)
	if err != nil || choice < 1 || choice > len(accounts) {
		return "", dto.AccountRead{}, fmt.Errorf("%w: %q", errInvalidChoice, raw)
	}
	return taxID, accounts[choice-1], nil
}

func (s *Session) readAmount(prompt string) (decimal.Decimal, error) {
	raw, err := s.read(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	return money.Parse(raw)
}

// readError marks failures of the underlying reader.
type readError struct{ err error }

func (e readError) Error() string { return "read input: " + e.err.Error() }
func (e readError) Unwrap() error { return e.err }

func isReadError(err error) bool {
	var re readError
	return errors.As(err, &re)
}

func (s *Session) read(prompt string) (string, error) {
	s.prompt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		if err := s.in.Err(); err != nil {
			return "", readError{err}
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) ok(msg string) {
	s.success.Fprintln(s.out, "✅ "+msg)
}

func (s *Session) fail(msg string) {
	s.failure.Fprintln(s.out, "❌ "+msg)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
