package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRunID contextKey = "run_id"
	ContextKeyVenue contextKey = "venue"
)

// WithRunID adds a pipeline run ID to the context
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ContextKeyRunID, runID)
}

// RunIDFromContext extracts the run ID from context
func RunIDFromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(ContextKeyRunID).(string); ok {
		return runID
	}
	return ""
}

// WithVenue adds the venue currently being processed to the context
func WithVenue(ctx context.Context, venue string) context.Context {
	return context.WithValue(ctx, ContextKeyVenue, venue)
}

// VenueFromContext extracts the venue name from context
func VenueFromContext(ctx context.Context) string {
	if venue, ok := ctx.Value(ContextKeyVenue).(string); ok {
		return venue
	}
	return ""
}
