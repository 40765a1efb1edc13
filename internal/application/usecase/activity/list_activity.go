package activity

import (
	"context"

	"github.com/mylance/content-engine/internal/domain/activity"
	"github.com/mylance/content-engine/pkg/apperror"
)

const defaultActivityLimit = 50

type ListActivityUseCase struct {
	activityRepo activity.Repository
}

func NewListActivityUseCase(repo activity.Repository) *ListActivityUseCase {
	return &ListActivityUseCase{activityRepo: repo}
}

type ListActivityInput struct {
	ProfileID string
	Limit     int
}

type ListActivityOutput struct {
	Entries []activity.Entry
}

// Execute returns the most recent activity rows for one profile, newest
// first. An unknown profile id simply yields an empty list; the log does not
// check profile existence.
func (uc *ListActivityUseCase) Execute(ctx context.Context, input ListActivityInput) (*ListActivityOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	entries, err := uc.activityRepo.ListByProfile(ctx, input.ProfileID, limit)
	if err != nil {
		return nil, apperror.NewInternal("failed to list profile activity", err)
	}
	return &ListActivityOutput{Entries: entries}, nil
}
