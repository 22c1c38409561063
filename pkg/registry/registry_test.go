package registry

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/common"
	"github.com/amirasaad/minibank/pkg/domain/customer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ana() customer.Profile {
	return customer.Profile{TaxID: "111", Name: "Ana", BirthDate: "01/01/1990", Address: "Rua A"}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New()
	assert.NotNil(registry)
	customers, accounts := registry.Count()
	assert.Zero(customers)
	assert.Zero(accounts)
	assert.Empty(registry.ListCustomers())
	assert.Empty(registry.ListAccounts())
}

func TestRegistry_RegisterCustomer(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	registry := New()

	c, err := registry.RegisterCustomer(ana())
	require.NoError(t, err)
	assert.Equal("Ana", c.Name())

	// Duplicate tax id is rejected and the original data is kept.
	_, err = registry.RegisterCustomer(customer.Profile{TaxID: "111", Name: "Impostor"})
	assert.ErrorIs(err, customer.ErrDuplicateCustomer)
	assert.ErrorIs(err, common.ErrAlreadyExists)

	found, err := registry.FindCustomer("111")
	require.NoError(t, err)
	assert.Same(c, found)
	assert.Equal("Ana", found.Name())
	assert.Equal("Rua A", found.Profile().Address)

	_, err = registry.RegisterCustomer(customer.Profile{Name: "no id"})
	assert.ErrorIs(err, customer.ErrTaxIDRequired)
}

func TestRegistry_FindCustomerNotFound(t *testing.T) {
	t.Parallel()
	_, err := New().FindCustomer("404")
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRegistry_NextAccountNumber(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	registry := New(WithFirstAccountNumber(100))
	assert.Equal(100, registry.NextAccountNumber())
	assert.Equal(101, registry.NextAccountNumber())

	assert.Equal(1, New(WithFirstAccountNumber(0)).NextAccountNumber(), "base is clamped to 1")
}

func TestRegistry_NextAccountNumberConcurrent(t *testing.T) {
	t.Parallel()
	registry := New()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int]bool)
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := registry.NextAccountNumber()
			mu.Lock()
			seen[n] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 100)
	assert.Equal(t, 101, registry.NextAccountNumber())
}

func TestRegistry_OpenAccount(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	fixed := time.Date(2025, time.January, 5, 12, 0, 0, 0, time.UTC)
	limits := account.Limits{PerWithdrawal: decimal.NewFromInt(100), DailyWithdrawals: 2}
	registry := New(
		WithAgency("0042"),
		WithLimits(limits),
		WithClock(func() time.Time { return fixed }),
	)

	_, err := registry.OpenAccount("111")
	assert.ErrorIs(err, customer.ErrCustomerNotFound)

	c, err := registry.RegisterCustomer(ana())
	require.NoError(t, err)
	acc, err := registry.OpenAccount("111")
	require.NoError(t, err)

	assert.Equal(1, acc.Number)
	assert.Equal("0042", acc.Agency)
	assert.Equal("111", acc.CustomerID)
	assert.Equal(limits, acc.Limits())
	assert.Equal(fixed, acc.CreatedAt)
	assert.Equal([]*account.Account{acc}, c.Accounts())

	found, err := registry.FindAccount("111", 1)
	require.NoError(t, err)
	assert.Same(acc, found)
}

func TestRegistry_FindAccountChecksOwnership(t *testing.T) {
	t.Parallel()
	registry := New()
	_, err := registry.RegisterCustomer(ana())
	require.NoError(t, err)
	_, err = registry.RegisterCustomer(customer.Profile{TaxID: "222", Name: "Bruno"})
	require.NoError(t, err)
	anaAcc, err := registry.OpenAccount("111")
	require.NoError(t, err)

	_, err = registry.FindAccount("222", anaAcc.Number)
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = registry.FindAccount("999", anaAcc.Number)
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

func TestRegistry_Listings(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	registry := New()

	for i, name := range []string{"Ana", "Bruno", "Carla"} {
		_, err := registry.RegisterCustomer(customer.Profile{TaxID: fmt.Sprint(i + 1), Name: name})
		require.NoError(t, err)
	}
	first, err := registry.OpenAccount("2")
	require.NoError(t, err)
	_, err = registry.OpenAccount("1")
	require.NoError(t, err)
	_, err = registry.OpenAccount("2")
	require.NoError(t, err)
	_, err = first.Deposit(decimal.NewFromInt(75))
	require.NoError(t, err)

	customers := registry.ListCustomers()
	require.Len(t, customers, 3)
	assert.Equal([]string{"Ana", "Bruno", "Carla"}, []string{customers[0].Name, customers[1].Name, customers[2].Name})
	assert.Len(customers[0].Accounts, 1)
	assert.Len(customers[1].Accounts, 2)
	assert.Empty(customers[2].Accounts)

	accounts := registry.ListAccounts()
	require.Len(t, accounts, 3)
	assert.Equal(1, accounts[0].Number)
	assert.Equal("Bruno", accounts[0].Holder)
	assert.Equal("75.00", accounts[0].Balance.StringFixed(2))
	assert.Equal(2, accounts[1].Number)
	assert.Equal("Ana", accounts[1].Holder)
	assert.Equal(3, accounts[2].Number)

	// Snapshots do not follow later changes.
	_, err = first.Deposit(decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.Equal("75.00", accounts[0].Balance.StringFixed(2))

	numCustomers, numAccounts := registry.Count()
	assert.Equal(3, numCustomers)
	assert.Equal(3, numAccounts)
}

func TestRegistry_OpenAccountConsumesNumbers(t *testing.T) {
	t.Parallel()
	registry := New()
	_, err := registry.RegisterCustomer(ana())
	require.NoError(t, err)

	assert.Equal(t, 1, registry.NextAccountNumber())
	acc, err := registry.OpenAccount("111")
	require.NoError(t, err)
	assert.Equal(t, 2, acc.Number, "numbers are never reused")
}

func TestRegistry_ListsAccountsOpenedThroughCustomer(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	registry := New()

	first, err := registry.RegisterCustomer(ana())
	require.NoError(t, err)
	bruno, err := registry.RegisterCustomer(customer.Profile{TaxID: "222", Name: "Bruno"})
	require.NoError(t, err)

	_, err = bruno.OpenAccount(registry)
	require.NoError(t, err)
	_, err = registry.OpenAccount("111")
	require.NoError(t, err)
	_, err = first.OpenAccount(registry)
	require.NoError(t, err)

	accounts := registry.ListAccounts()
	require.Len(t, accounts, 3)
	assert.Equal([]int{1, 2, 3}, []int{accounts[0].Number, accounts[1].Number, accounts[2].Number})
	assert.Equal("Bruno", accounts[0].Holder)
	assert.Equal("Ana", accounts[2].Holder)

	customers := registry.ListCustomers()
	assert.Len(customers[0].Accounts, 2)
	assert.Len(customers[1].Accounts, 1)

	numCustomers, numAccounts := registry.Count()
	assert.Equal(2, numCustomers)
	assert.Equal(3, numAccounts)
}

func TestRegistry_LookupsIgnoreSurroundingWhitespace(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	registry := New()

	c, err := registry.RegisterCustomer(customer.Profile{TaxID: " 2 ", Name: "Bruno"})
	require.NoError(t, err)
	assert.Equal("2", c.TaxID())

	found, err := registry.FindCustomer(" 2 ")
	require.NoError(t, err)
	assert.Same(c, found)

	acc, err := registry.OpenAccount("2 ")
	require.NoError(t, err)
	foundAcc, err := registry.FindAccount(" 2", acc.Number)
	require.NoError(t, err)
	assert.Same(acc, foundAcc)

	_, err = registry.RegisterCustomer(customer.Profile{TaxID: "2"})
	assert.ErrorIs(err, customer.ErrDuplicateCustomer)
}
