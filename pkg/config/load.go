package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig is returned when the loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Debug("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Debug("No valid environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"bank", cfg.Bank.Name,
		"agency", cfg.Bank.Agency,
		"withdrawal_limit", cfg.Bank.WithdrawalLimit.StringFixed(2),
		"daily_withdrawals", cfg.Bank.DailyWithdrawals,
	)
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags and the rules tags cannot express.
func (a *App) Validate() error {
	if a.Log == nil || a.Bank == nil {
		return fmt.Errorf("%w: log and bank sections are required", ErrInvalidConfig)
	}
	if err := validate.Struct(a.Log); err != nil {
		return fmt.Errorf("%w: log: %v", ErrInvalidConfig, err)
	}
	if err := validate.Struct(a.Bank); err != nil {
		return fmt.Errorf("%w: bank: %v", ErrInvalidConfig, err)
	}
	if !a.Bank.WithdrawalLimit.IsPositive() {
		return fmt.Errorf("%w: bank: withdrawal limit must be positive", ErrInvalidConfig)
	}
	return nil
}
