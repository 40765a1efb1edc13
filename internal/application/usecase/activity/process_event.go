package activity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/internal/domain/activity"
)

// ProcessEventUseCase turns a consumed kafka event into an activity-log row.
// It runs inside the worker, never in the request path.
type ProcessEventUseCase struct {
	activityRepo activity.Repository
}

func NewProcessEventUseCase(repo activity.Repository) *ProcessEventUseCase {
	return &ProcessEventUseCase{activityRepo: repo}
}

func (uc *ProcessEventUseCase) Execute(ctx context.Context, payload event.Payload) error {
	occurredAt := payload.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	entry := &activity.Entry{
		ID:         uuid.New(),
		EventType:  payload.EventType,
		ProfileID:  payload.ProfileID,
		Detail:     payload.Detail,
		OccurredAt: occurredAt,
	}
	return uc.activityRepo.Append(ctx, entry)
}
