// Package utils provides general-purpose helpers shared by the device
// components: context keys, base URL normalisation, JSON response writing,
// the resty HTTP client wrapper and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// EventSeqCtxKey stores the arrival sequence number of the push event a
// handler is processing.
var EventSeqCtxKey = contextKey("eventSeq")

// WithEventSeq returns a copy of ctx carrying seq.
func WithEventSeq(ctx context.Context, seq uint64) context.Context {
	return context.WithValue(ctx, EventSeqCtxKey, seq)
}

// GetEventSeqFromContext returns the push event sequence number stored in
// ctx and whether one was present.
func GetEventSeqFromContext(ctx context.Context) (uint64, bool) {
	seq, ok := ctx.Value(EventSeqCtxKey).(uint64)
	return seq, ok
}
