package initializer

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/decorator"
	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/amirasaad/minibank/pkg/registry"
	"github.com/amirasaad/minibank/pkg/service/bank"
)

// ErrNilConfig is returned when InitializeDependencies is called without configuration.
var ErrNilConfig = errors.New("initializer: nil configuration")

// InitializeDependencies initializes all the application dependencies.
// Logs are written to logWriter, or to stderr when it is nil.
func InitializeDependencies(cfg *config.App, logWriter io.Writer) (
	deps *config.Deps,
	err error,
) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if logWriter == nil {
		logWriter = os.Stderr
	}

	deps = &config.Deps{Config: cfg}
	logger := setupLogger(cfg.Log, logWriter)
	deps.Logger = logger

	bus := eventbus.NewWithMemory(logger)
	bus.Register(events.EventTypeOperationFailed.String(), func(ctx context.Context, e events.Event) error {
		if ev, ok := e.(events.OperationFailed); ok {
			logger.DebugContext(ctx, "audit: operation failed",
				"event_id", ev.ID,
				"operation", ev.Operation,
				"reason", ev.Reason,
			)
		}
		return nil
	})
	deps.EventBus = bus

	deps.Registry = registry.New(
		registry.WithAgency(cfg.Bank.Agency),
		registry.WithFirstAccountNumber(cfg.Bank.FirstAccountNumber),
		registry.WithLimits(account.Limits{
			PerWithdrawal:    cfg.Bank.WithdrawalLimit,
			DailyWithdrawals: cfg.Bank.DailyWithdrawals,
		}),
	)
	deps.Auditor = decorator.NewEventAuditor(bus, logger, bank.Reason)

	logger.Info("Dependencies initialized",
		"bank", cfg.Bank.Name,
		"agency", cfg.Bank.Agency,
		"env", cfg.Env,
	)
	return deps, nil
}
