// Package eventbus defines the contract for publishing audit events and an
// in-memory implementation.
package eventbus

import (
	"context"

	"github.com/amirasaad/minibank/pkg/domain/events"
)

// HandlerFunc handles one event. Errors are logged by the bus, never propagated
// to the publisher.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus defines the contract for publishing and subscribing to events.
type Bus interface {
	Register(eventType string, handler HandlerFunc)
	Emit(ctx context.Context, event events.Event) error
}
