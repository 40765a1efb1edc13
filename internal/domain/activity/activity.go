package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one row in the activity log, written by the worker for every
// profile or generation event it consumes.
type Entry struct {
	ID         uuid.UUID      `json:"id"`
	EventType  string         `json:"event_type"`
	ProfileID  string         `json:"profile_id"`
	Detail     map[string]any `json:"detail"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	ListByProfile(ctx context.Context, profileID string, limit int) ([]Entry, error)
}
