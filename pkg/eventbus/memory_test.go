package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryEventBus_EmitDispatchesByType(t *testing.T) {
	bus := eventbus.NewWithMemory(quietLogger())

	var succeeded, failed []string
	bus.Register(events.EventTypeOperationSucceeded.String(), func(_ context.Context, e events.Event) error {
		succeeded = append(succeeded, e.(events.OperationSucceeded).Operation)
		return nil
	})
	bus.Register(events.EventTypeOperationFailed.String(), func(_ context.Context, e events.Event) error {
		failed = append(failed, e.(events.OperationFailed).Operation)
		return nil
	})

	ctx := context.Background()
	require.NoError(t, bus.Emit(ctx, events.OperationSucceeded{OperationEvent: events.NewOperationEvent("a")}))
	require.NoError(t, bus.Emit(ctx, events.OperationFailed{OperationEvent: events.NewOperationEvent("b")}))
	require.NoError(t, bus.Emit(ctx, events.OperationSucceeded{OperationEvent: events.NewOperationEvent("c")}))

	assert.Equal(t, []string{"a", "c"}, succeeded)
	assert.Equal(t, []string{"b"}, failed)
	assert.Len(t, bus.Published(), 3)
}

func TestMemoryEventBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := eventbus.NewWithMemory(quietLogger())
	calls := 0
	kind := events.EventTypeOperationSucceeded.String()
	bus.Register(kind, func(context.Context, events.Event) error { calls++; return errors.New("boom") })
	bus.Register(kind, func(context.Context, events.Event) error { calls++; return nil })

	err := bus.Emit(context.Background(), events.OperationSucceeded{OperationEvent: events.NewOperationEvent("x")})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestMemoryEventBus_ClearPublished(t *testing.T) {
	bus := eventbus.NewWithMemory(nil)
	require.NoError(t, bus.Emit(context.Background(), events.OperationSucceeded{}))
	published := bus.Published()
	require.Len(t, published, 1)

	bus.ClearPublished()
	assert.Empty(t, bus.Published())
	assert.Len(t, published, 1, "earlier snapshots are not affected")
}
