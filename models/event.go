package models

import "time"

// Outcome of a journaled device command.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// DeviceEvent is a journal row describing one device command issued by the
// daemon, whether it succeeded or not.
type DeviceEvent struct {
	// ID is the storage-assigned identifier.
	ID int64 `json:"id"`

	// TraceID links the event to the HTTP request (X-Trace-ID) or worker run
	// that caused it. Empty for calls without a trace.
	TraceID string `json:"trace_id,omitempty"`

	// Command is the Lightpack command name, e.g. "setbrightness".
	Command string `json:"command"`

	// Argument is the command argument as sent on the wire, e.g. "50".
	Argument string `json:"argument,omitempty"`

	// Outcome is either [OutcomeOK] or [OutcomeFailed].
	Outcome string `json:"outcome"`

	// Error holds the error text for failed commands.
	Error string `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
