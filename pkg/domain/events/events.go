// Package events defines the audit events emitted around bank operations.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is implemented by every event published on the bus.
type Event interface {
	Type() string
}

// OperationEvent carries what every audit event shares.
type OperationEvent struct {
	ID        uuid.UUID
	Operation string         // e.g. "Account.Withdraw"
	Attrs     map[string]any // operation arguments worth auditing (tax id, account, amount)
	Duration  time.Duration
	Timestamp time.Time
}

// OperationEventOpt customizes an OperationEvent.
type OperationEventOpt func(*OperationEvent)

// NewOperationEvent creates an event for operation with a fresh id and the current time.
func NewOperationEvent(operation string, opts ...OperationEventOpt) OperationEvent {
	e := OperationEvent{
		ID:        uuid.New(),
		Operation: operation,
		Attrs:     map[string]any{},
		Timestamp: time.Now(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// WithAttrs merges slog-style key/value pairs into the event attributes.
// Keys that are not strings are skipped.
func WithAttrs(kv ...any) OperationEventOpt {
	return func(e *OperationEvent) {
		for i := 0; i+1 < len(kv); i += 2 {
			if k, ok := kv[i].(string); ok {
				e.Attrs[k] = kv[i+1]
			}
		}
	}
}

// WithDuration records how long the operation took.
func WithDuration(d time.Duration) OperationEventOpt {
	return func(e *OperationEvent) { e.Duration = d }
}

// OperationSucceeded is emitted after an operation completed.
type OperationSucceeded struct {
	OperationEvent
}

// Type returns the event type.
func (e OperationSucceeded) Type() string { return EventTypeOperationSucceeded.String() }

// OperationFailed is emitted after an operation returned an error.
type OperationFailed struct {
	OperationEvent
	Reason string
	Err    error
}

// Type returns the event type.
func (e OperationFailed) Type() string { return EventTypeOperationFailed.String() }
