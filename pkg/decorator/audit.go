// Package decorator provides decorator patterns for cross-cutting concerns in the application.
// It wraps bank operations with structured logging and audit events so that
// the domain packages stay free of I/O.
package decorator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/eventbus"
)

// Auditor defines the interface for audit decorators.
//
// Example usage:
//
//	err := auditor.Execute(ctx, "Account.Deposit", []any{"account", 1}, func() error {
//	    _, err := acc.Deposit(amount)
//	    return err
//	})
type Auditor interface {
	// Execute runs operation, logs its outcome and emits an
	// OperationSucceeded or OperationFailed event. The operation's error is
	// returned unchanged.
	Execute(ctx context.Context, name string, attrs []any, operation func() error) error
}

// ReasonFunc turns an operation error into a short, stable failure reason
// recorded on OperationFailed events.
type ReasonFunc func(error) string

// EventAuditor implements Auditor on top of an event bus and a slog logger.
type EventAuditor struct {
	bus    eventbus.Bus
	logger *slog.Logger
	reason ReasonFunc
	now    func() time.Time
}

// NewEventAuditor creates an EventAuditor. bus may be nil, in which case
// only logging happens.
func NewEventAuditor(bus eventbus.Bus, logger *slog.Logger, reason ReasonFunc) *EventAuditor {
	if logger == nil {
		logger = slog.Default()
	}
	if reason == nil {
		reason = func(err error) string { return err.Error() }
	}
	return &EventAuditor{
		bus:    bus,
		logger: logger,
		reason: reason,
		now:    time.Now,
	}
}

// Execute runs operation with audit logging and events.
//
// Panics are recovered long enough to log and emit a failure event, then re-panicked.
// Failures emitting to the bus are logged and never mask the operation's result.
func (d *EventAuditor) Execute(ctx context.Context, name string, attrs []any, operation func() error) (err error) {
	logger := d.logger.With("operation", name).With(attrs...)
	start := d.now()
	logger.Debug("operation started")

	defer func() {
		if r := recover(); r != nil {
			logger.Error("operation panic recovered", "panic", r)
			d.emit(ctx, logger, events.OperationFailed{
				OperationEvent: d.event(name, attrs, start),
				Reason:         "panic",
				Err:            errors.New("panic"),
			})
			panic(r)
		}
	}()

	if err = operation(); err != nil {
		reason := d.reason(err)
		logger.Warn("operation failed", "reason", reason, "error", err)
		d.emit(ctx, logger, events.OperationFailed{
			OperationEvent: d.event(name, attrs, start),
			Reason:         reason,
			Err:            err,
		})
		return err
	}

	logger.Info("operation succeeded", "duration", d.now().Sub(start))
	d.emit(ctx, logger, events.OperationSucceeded{OperationEvent: d.event(name, attrs, start)})
	return nil
}

func (d *EventAuditor) event(name string, attrs []any, start time.Time) events.OperationEvent {
	return events.NewOperationEvent(name,
		events.WithAttrs(attrs...),
		events.WithDuration(d.now().Sub(start)),
	)
}

func (d *EventAuditor) emit(ctx context.Context, logger *slog.Logger, e events.Event) {
	if d.bus == nil {
		return
	}
	if err := d.bus.Emit(ctx, e); err != nil {
		logger.Error("failed to emit audit event", "event_type", e.Type(), "error", err)
	}
}

// Ensure EventAuditor implements the Auditor interface.
var _ Auditor = (*EventAuditor)(nil)
