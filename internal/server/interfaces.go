package server

import "context"

// Server defines the common lifecycle contract for the daemon and its
// transports.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Runner is implemented by the background worker aggregate.
type Runner interface {
	Run(ctx context.Context) error
}
