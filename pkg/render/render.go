// Package render formats bank data for the terminal.
//
// Every helper takes plain DTOs and returns a string; nothing here writes to
// an output or touches the domain.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/dto"
	"github.com/amirasaad/minibank/pkg/money"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Width is the width of every rendered block.
const Width = 50

// TimeLayout is the layout used for transaction timestamps.
const TimeLayout = "02/01/2006 15:04:05"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Width(Width).Align(lipgloss.Center)
	mutedStyle = lipgloss.NewStyle().Faint(true).Width(Width).Align(lipgloss.Center)
	totalStyle = lipgloss.NewStyle().Bold(true).Width(Width).Align(lipgloss.Right)
	menuStyle  = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).
			Padding(0, 2)

	doubleRule = strings.Repeat("=", Width)
	singleRule = strings.Repeat("-", Width)
)

// MenuOption is one entry of the main menu.
type MenuOption struct {
	Key   string
	Label string
}

// Banner renders a centered title between two rules.
func Banner(title string) string {
	var b strings.Builder
	b.WriteString(doubleRule + "\n")
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(doubleRule + "\n")
	return b.String()
}

// Menu renders the main menu box.
func Menu(title string, options []MenuOption) string {
	lines := make([]string, 0, len(options)+2)
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(title), "")
	for _, o := range options {
		lines = append(lines, fmt.Sprintf("%-5s %s", "["+o.Key+"]", o.Label))
	}
	return menuStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// Amount renders an amount right-aligned after the currency symbol.
func Amount(d decimal.Decimal) string {
	return fmt.Sprintf("%s %10s", money.DefaultCode.Symbol(), money.Round(d).StringFixed(money.Decimals))
}

// TransactionLine renders one history line: "timestamp | KIND | R$ amount".
func TransactionLine(at time.Time, kind account.Kind, amount decimal.Decimal) string {
	return fmt.Sprintf("%s | %-10s | %s", at.Format(TimeLayout), kind, Amount(amount))
}

// Statement renders an account statement.
func Statement(st dto.StatementRead) string {
	var b strings.Builder
	b.WriteString(doubleRule + "\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("STATEMENT - Account: %d | Agency: %s", st.Account.Number, st.Account.Agency)) + "\n")
	if st.Account.Holder != "" {
		b.WriteString(titleStyle.Render("Holder: "+st.Account.Holder) + "\n")
	}
	b.WriteString(doubleRule + "\n")
	if len(st.Entries) == 0 {
		b.WriteString(mutedStyle.Render("No transactions recorded.") + "\n")
	}
	for _, e := range st.Entries {
		b.WriteString(TransactionLine(e.Timestamp, e.Kind, e.Amount) + "\n")
	}
	b.WriteString(singleRule + "\n")
	b.WriteString(totalStyle.Render("CURRENT BALANCE: "+money.Format(st.Balance)) + "\n")
	b.WriteString(doubleRule + "\n")
	return b.String()
}

// Report renders the transactions of a report. A nil kind means no filter was applied.
func Report(acc dto.AccountRead, kind *account.Kind, txs []dto.TransactionRead) string {
	var b strings.Builder
	b.WriteString(Banner("TRANSACTION REPORT"))
	filter := "all"
	if kind != nil {
		filter = kind.String()
	}
	b.WriteString(fmt.Sprintf("Account: %d | Agency: %s | Filter: %s\n", acc.Number, acc.Agency, filter))
	b.WriteString(singleRule + "\n")
	if len(txs) == 0 {
		b.WriteString(mutedStyle.Render("No matching transactions.") + "\n")
	}
	for _, t := range txs {
		b.WriteString(TransactionLine(t.Timestamp, t.Kind, t.Amount) + "\n")
	}
	b.WriteString(doubleRule + "\n")
	return b.String()
}

// AccountLine renders an account as a single line.
func AccountLine(a dto.AccountRead) string {
	return fmt.Sprintf("Ag: %s | Account: %04d | Holder: %-20s | Balance: %s", a.Agency, a.Number, a.Holder, Amount(a.Balance))
}

// AccountList renders every account of the bank.
func AccountList(accounts []dto.AccountRead) string {
	var b strings.Builder
	b.WriteString(Banner("BANK ACCOUNTS"))
	if len(accounts) == 0 {
		b.WriteString(mutedStyle.Render("No accounts registered.") + "\n")
	}
	for _, a := range accounts {
		b.WriteString(AccountLine(a) + "\n")
	}
	b.WriteString(doubleRule + "\n")
	return b.String()
}

// CustomerList renders every customer with their accounts.
func CustomerList(customers []dto.CustomerRead) string {
	var b strings.Builder
	b.WriteString(Banner("BANK CUSTOMERS"))
	if len(customers) == 0 {
		b.WriteString(mutedStyle.Render("No customers registered.") + "\n")
	}
	for _, c := range customers {
		b.WriteString(fmt.Sprintf("• %s (tax id: %s)\n", c.Name, c.TaxID))
		for _, a := range c.Accounts {
			b.WriteString(fmt.Sprintf("  └─ Account: %d | Balance: %s\n", a.Number, money.Format(a.Balance)))
		}
	}
	b.WriteString(doubleRule + "\n")
	return b.String()
}

// AccountChoices renders a 1-based numbered list used to pick one account.
func AccountChoices(accounts []dto.AccountRead) string {
	var b strings.Builder
	b.WriteString("Available accounts:\n")
	for i, a := range accounts {
		b.WriteString(fmt.Sprintf("%d. Account %d - Balance: %s\n", i+1, a.Number, money.Format(a.Balance)))
	}
	return b.String()
}
