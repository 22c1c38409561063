package config

import (
	"github.com/shopspring/decimal"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=json text logfmt"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"02/01/2006 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[minibank]"`
}

type Bank struct {
	Name               string          `envconfig:"NAME" default:"Banco PyDIO" validate:"required"`
	Agency             string          `envconfig:"AGENCY" default:"0001" validate:"required,numeric,len=4"`
	FirstAccountNumber int             `envconfig:"FIRST_ACCOUNT_NUMBER" default:"1" validate:"min=1"`
	WithdrawalLimit    decimal.Decimal `envconfig:"WITHDRAWAL_LIMIT" default:"500.00"`
	DailyWithdrawals   int             `envconfig:"DAILY_WITHDRAWALS" default:"3" validate:"min=0"`
}

type App struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Log  *Log   `envconfig:"LOG"`
	Bank *Bank  `envconfig:"BANK"`
}

// Default returns the configuration used when no environment is provided.
func Default() *App {
	return &App{
		Env: "development",
		Log: &Log{
			Format:     "text",
			TimeFormat: "02/01/2006 15:04:05",
			Prefix:     "[minibank]",
		},
		Bank: &Bank{
			Name:               "Banco PyDIO",
			Agency:             "0001",
			FirstAccountNumber: 1,
			WithdrawalLimit:    decimal.NewFromInt(500),
			DailyWithdrawals:   3,
		},
	}
}
