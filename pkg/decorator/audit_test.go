package decorator_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amirasaad/minibank/pkg/decorator"
	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuditorTestSuite struct {
	suite.Suite
	logs    *bytes.Buffer
	bus     *eventbus.MemoryEventBus
	auditor *decorator.EventAuditor
}

func (s *AuditorTestSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.bus = eventbus.NewWithMemory(logger)
	s.auditor = decorator.NewEventAuditor(s.bus, logger, func(err error) string { return "reason:" + err.Error() })
}

func (s *AuditorTestSuite) TestSuccessEmitsSucceeded() {
	called := false
	err := s.auditor.Execute(context.Background(), "Account.Deposit", []any{"account", 7}, func() error {
		called = true
		return nil
	})

	s.Require().NoError(err)
	s.True(called)
	published := s.bus.Published()
	s.Require().Len(published, 1)
	ev, ok := published[0].(events.OperationSucceeded)
	s.Require().True(ok)
	s.Equal("Account.Deposit", ev.Operation)
	s.Equal(7, ev.Attrs["account"])
	s.Contains(s.logs.String(), "operation succeeded")
	s.Contains(s.logs.String(), "operation=Account.Deposit")
}

func (s *AuditorTestSuite) TestFailureReturnsOriginalError() {
	sentinel := errors.New("insufficient funds")
	err := s.auditor.Execute(context.Background(), "Account.Withdraw", nil, func() error {
		return sentinel
	})

	s.Require().ErrorIs(err, sentinel)
	published := s.bus.Published()
	s.Require().Len(published, 1)
	ev, ok := published[0].(events.OperationFailed)
	s.Require().True(ok)
	s.Equal("reason:insufficient funds", ev.Reason)
	s.Equal(sentinel, ev.Err)
	s.Contains(s.logs.String(), "operation failed")
}

func (s *AuditorTestSuite) TestPanicIsReportedAndRepanicked() {
	s.Panics(func() {
		_ = s.auditor.Execute(context.Background(), "Boom", nil, func() error {
			panic("kaboom")
		})
	})
	published := s.bus.Published()
	s.Require().Len(published, 1)
	s.Equal(events.EventTypeOperationFailed.String(), published[0].Type())
	s.Contains(s.logs.String(), "operation panic recovered")
}

func TestAuditorTestSuite(t *testing.T) {
	suite.Run(t, new(AuditorTestSuite))
}

func TestNilBusOnlyLogs(t *testing.T) {
	var logs bytes.Buffer
	auditor := decorator.NewEventAuditor(nil, slog.New(slog.NewTextHandler(&logs, nil)), nil)

	err := auditor.Execute(context.Background(), "Registry.RegisterCustomer", nil, func() error {
		return errors.New("duplicate")
	})
	require.Error(t, err)
	assert.Contains(t, logs.String(), "reason=duplicate")
}
