package profile

import (
	"context"

	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/pkg/apperror"
)

type ListProfilesUseCase struct {
	profileRepo profile.Repository
}

func NewListProfilesUseCase(repo profile.Repository) *ListProfilesUseCase {
	return &ListProfilesUseCase{profileRepo: repo}
}

type ListProfilesOutput struct {
	Profiles []profile.Summary
}

func (uc *ListProfilesUseCase) Execute(ctx context.Context) (*ListProfilesOutput, error) {
	summaries, err := uc.profileRepo.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to list profiles", err)
	}
	return &ListProfilesOutput{Profiles: summaries}, nil
}
