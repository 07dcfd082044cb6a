// Package server runs the transports and background workers of the
// go-lightpack daemon.
//
// It starts every enabled transport, runs the workers next to them, waits
// for a termination signal and shuts everything down gracefully.
package server
