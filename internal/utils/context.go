// Package utils provides general-purpose helper utilities used across
// go-lightpack: type-safe context keys, JSON response writing, the shared
// HTTP client, JWT token helpers and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// SubjectCtxKey stores the JWT subject of an authenticated request.
	SubjectCtxKey = contextKey("subject")

	// TraceIDCtxKey stores the trace id of the request or job run that
	// triggered a device call. The device journal records it.
	TraceIDCtxKey = contextKey("traceID")
)

// GetSubjectFromContext retrieves the authenticated subject.
//
// ok is false when the value is missing or has an unexpected type.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored by [WithTraceID], or an
// empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
