package profile

import (
	"context"
	"errors"

	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/pkg/apperror"
)

type GetProfileUseCase struct {
	profileRepo profile.Repository
}

func NewGetProfileUseCase(repo profile.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: repo}
}

type GetProfileInput struct {
	ProfileID string
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.FindByID(ctx, input.ProfileID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.ProfileID)
		}
		return nil, apperror.NewInternal("failed to load profile", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}
