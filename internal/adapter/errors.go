package adapter

import (
	"errors"
	"fmt"
)

// Error kinds reported by [DeviceAdapter] implementations.
var (
	// ErrNotConnected is returned without any I/O when no session is held.
	ErrNotConnected = errors.New("not connected")

	// ErrLockFailed means the device refused the `lock` command.
	ErrLockFailed = errors.New("device lock failed")

	// ErrCommandRejected means a mutating command was not acknowledged with "ok".
	ErrCommandRejected = errors.New("command rejected")

	// ErrUnexpectedResponse means the reply did not have the expected shape.
	ErrUnexpectedResponse = errors.New("unexpected response")

	// ErrConnectionFailed wraps dial and socket failures.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnexpectedHandshake means the welcome line lacked the Lightpack banner.
	ErrUnexpectedHandshake = errors.New("unexpected handshake")

	// ErrAuthenticationFailed means the API key was rejected.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrTimeout means an exchange did not complete within the deadline.
	ErrTimeout = errors.New("device timed out")

	// ErrUnauthorized is returned by the HTTP adapter on 401 responses.
	ErrUnauthorized = errors.New("client unauthorized")
)

// ProtocolError describes a reply the device sent that did not satisfy the
// command's success test.
type ProtocolError struct {
	// Command is the line sent, without the trailing newline.
	Command string
	// Response is the line received, with CR/LF trimmed.
	Response string
	// Kind is one of the sentinel errors of this package.
	Kind error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: command %q got %q", e.Kind, e.Command, e.Response)
}

func (e *ProtocolError) Unwrap() error {
	return e.Kind
}
