package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	// Operation events, emitted around every audited bank operation
	EventTypeOperationSucceeded EventType = "Operation.Succeeded"
	EventTypeOperationFailed    EventType = "Operation.Failed"
)

func (t EventType) String() string { return string(t) }
